package handler

import (
	"bytes"
	"fmt"
	"net/url"

	"scratch-quiz/internal/domain"
	"scratch-quiz/internal/dto"
	"scratch-quiz/internal/export"
	"scratch-quiz/internal/logger"
	"scratch-quiz/internal/service"
	"scratch-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	sessions  service.SessionService
	exports   service.ExportService
	writer    export.ReportWriter
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.SessionService, exports service.ExportService, writer export.ReportWriter) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		exports:   exports,
		writer:    writer,
		validator: validation.NewValidator(),
	}
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	return c.JSON(toSessionResponse(h.sessions.Session()))
}

// RestartSession handles POST /api/session
func (h *SessionHandler) RestartSession(c *fiber.Ctx) error {
	session := h.sessions.Initialize()
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(session))
}

// SelectOption handles POST /api/session/answers
func (h *SessionHandler) SelectOption(c *fiber.Ctx) error {
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateSelectOptionRequest(req.QuestionID, req.OptionID); len(errs) > 0 {
		return errs
	}

	if err := h.sessions.SelectOption(req.QuestionID, req.OptionID); err != nil {
		return err
	}

	return c.JSON(toSessionResponse(h.sessions.Session()))
}

// Submit handles POST /api/session/submit
func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	session := h.sessions.Submit()
	return c.JSON(dto.SubmitResponse{
		SessionID:      session.ID,
		Score:          session.Score,
		MaxScore:       session.MaxScore(),
		CorrectCount:   session.Score / domain.PointsPerQuestion,
		TotalQuestions: len(session.Questions),
		Accuracy:       accuracy(session),
	})
}

// Export handles GET /api/session/export
func (h *SessionHandler) Export(c *fiber.Ctx) error {
	session := h.sessions.Session()

	record, err := h.exports.BuildRecord(session)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.writer.Write(record, &buf); err != nil {
		logger.Get().Error("Failed to render report workbook",
			zap.Error(err),
			zap.String("session_id", session.ID),
		)
		return err
	}

	filename := h.writer.Filename(record)
	c.Set(fiber.HeaderContentType, xlsxContentType)
	// The filename carries non-ASCII characters; send both the plain and the
	// RFC 5987 encoded forms.
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="quiz-results.xlsx"; filename*=UTF-8''%s`, url.PathEscape(filename)))
	return c.Send(buf.Bytes())
}

func accuracy(session *domain.QuizSession) float64 {
	if session.MaxScore() == 0 {
		return 0
	}
	return float64(session.Score) / float64(session.MaxScore())
}

func toSessionResponse(session *domain.QuizSession) dto.SessionResponse {
	questions := make([]dto.QuestionResponse, 0, len(session.Questions))
	for i := range session.Questions {
		q := &session.Questions[i]

		options := make([]dto.OptionResponse, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, dto.OptionResponse{ID: opt.ID, Text: opt.Text})
		}

		resp := dto.QuestionResponse{
			ID:               q.ID,
			Question:         q.Text,
			Category:         string(q.Category),
			Options:          options,
			SelectedOptionID: session.Answers[q.ID],
		}
		// The answer key is only revealed once the session is frozen.
		if session.Submitted {
			resp.CorrectOptionID = q.CorrectOptionID
			isCorrect := session.Answers[q.ID] == q.CorrectOptionID
			resp.IsCorrect = &isCorrect
		}
		questions = append(questions, resp)
	}

	return dto.SessionResponse{
		SessionID:      session.ID,
		Questions:      questions,
		AnsweredCount:  session.AnsweredCount(),
		TotalQuestions: len(session.Questions),
		IsComplete:     session.IsComplete(),
		IsSubmitted:    session.Submitted,
		Score:          session.Score,
		MaxScore:       session.MaxScore(),
	}
}
