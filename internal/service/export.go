package service

import (
	"time"

	"scratch-quiz/internal/domain"
)

// ExportService turns a submitted session snapshot into a report record.
// It never re-scores: the session's score is the single source of truth.
type ExportService interface {
	BuildRecord(session *domain.QuizSession) (*domain.ExportRecord, error)
}

// exportService implements ExportService
type exportService struct {
	now func() time.Time
}

// NewExportService creates a new ExportService instance
func NewExportService() ExportService {
	return &exportService{now: time.Now}
}

// BuildRecord implements ExportService
func (s *exportService) BuildRecord(session *domain.QuizSession) (*domain.ExportRecord, error) {
	if !session.Submitted {
		return nil, domain.NewNotSubmittedError()
	}

	rows := make([]domain.ExportRow, 0, len(session.Questions))
	for i := range session.Questions {
		q := &session.Questions[i]

		userAnswerText := domain.UnansweredMarker
		if optionID, answered := session.Answers[q.ID]; answered {
			if text, ok := q.OptionText(optionID); ok {
				userAnswerText = text
			}
		}

		// Bank validation guarantees the correct option exists.
		correctAnswerText, _ := q.OptionText(q.CorrectOptionID)

		rows = append(rows, domain.ExportRow{
			Index:             i + 1,
			QuestionText:      q.Text,
			UserAnswerText:    userAnswerText,
			CorrectAnswerText: correctAnswerText,
			IsCorrect:         session.Answers[q.ID] == q.CorrectOptionID,
			Category:          q.Category,
		})
	}

	maxScore := session.MaxScore()
	accuracy := 0.0
	if maxScore > 0 {
		accuracy = float64(session.Score) / float64(maxScore)
	}

	return &domain.ExportRecord{
		Date:           s.now(),
		TotalScore:     session.Score,
		MaxScore:       maxScore,
		CorrectCount:   session.Score / domain.PointsPerQuestion,
		TotalQuestions: len(session.Questions),
		Accuracy:       accuracy,
		Rows:           rows,
	}, nil
}
