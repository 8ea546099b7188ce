package service

import (
	"math/rand"
	"sync"
	"time"

	"scratch-quiz/internal/domain"
	"scratch-quiz/internal/logger"
	"scratch-quiz/internal/util"

	"go.uber.org/zap"
)

// SessionService owns the quiz session lifecycle. It is the only mutation
// path into the session; presentation reads snapshots and calls the three
// entry points (Initialize, SelectOption, Submit).
type SessionService interface {
	// Initialize starts a fresh session from a newly shuffled copy of the
	// question bank. Usable both as first entry and as restart from any
	// state, including Submitted.
	Initialize() *domain.QuizSession

	// SelectOption records (or overwrites) the answer for a question.
	// After submission the session is frozen and the call fails with
	// ALREADY_SUBMITTED without touching any state.
	SelectOption(questionID int, optionID string) error

	// Submit freezes the session and computes the final score. Submitting
	// an already-submitted session is a no-op returning the frozen result.
	Submit() *domain.QuizSession

	// IsComplete reports whether every question has an answer.
	IsComplete() bool

	// Session returns a read-only snapshot of the current session.
	Session() *domain.QuizSession
}

// sessionService implements SessionService
type sessionService struct {
	mu      sync.Mutex
	bank    domain.QuestionBank
	rng     *rand.Rand
	session *domain.QuizSession
}

// NewSessionService creates a session engine over the given bank and
// initializes the first session immediately.
func NewSessionService(bank domain.QuestionBank) SessionService {
	s := &sessionService{
		bank: bank,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.Initialize()
	return s
}

// Initialize implements SessionService
func (s *sessionService) Initialize() *domain.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &domain.QuizSession{
		ID:        util.NewULID(),
		Questions: util.Shuffle(s.rng, s.bank.Questions()),
		Answers:   make(map[int]string),
		StartedAt: time.Now(),
	}

	logger.Get().Info("Session initialized",
		zap.String("session_id", s.session.ID),
		zap.Int("question_count", len(s.session.Questions)),
	)

	return s.session.Clone()
}

// SelectOption implements SessionService
func (s *sessionService) SelectOption(questionID int, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Submitted {
		return domain.NewAlreadySubmittedError()
	}

	question, ok := s.session.QuestionByID(questionID)
	if !ok {
		return domain.NewUnknownQuestionError(questionID)
	}
	if !question.HasOption(optionID) {
		return domain.NewInvalidOptionError(questionID, optionID)
	}

	s.session.Answers[questionID] = optionID

	logger.Get().Debug("Answer recorded",
		zap.String("session_id", s.session.ID),
		zap.Int("question_id", questionID),
		zap.String("option_id", optionID),
		zap.Int("answered", s.session.AnsweredCount()),
	)

	return nil
}

// Submit implements SessionService
func (s *sessionService) Submit() *domain.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Submitted {
		// Idempotent: the score was fixed at the first submission.
		return s.session.Clone()
	}

	score := 0
	for i := range s.session.Questions {
		q := &s.session.Questions[i]
		if s.session.Answers[q.ID] == q.CorrectOptionID {
			score += domain.PointsPerQuestion
		}
	}
	s.session.Score = score
	s.session.Submitted = true
	s.session.SubmittedAt = time.Now()

	logger.Get().Info("Session submitted",
		zap.String("session_id", s.session.ID),
		zap.Int("score", score),
		zap.Int("max_score", s.session.MaxScore()),
		zap.Int("answered", s.session.AnsweredCount()),
	)

	return s.session.Clone()
}

// IsComplete implements SessionService
func (s *sessionService) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsComplete()
}

// Session implements SessionService
func (s *sessionService) Session() *domain.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}
