package service

import (
	"os"
	"testing"

	"scratch-quiz/internal/config"
	"scratch-quiz/internal/domain"
	"scratch-quiz/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug", Env: "test"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockQuestionBank struct {
	mock.Mock
}

func (m *MockQuestionBank) Questions() []domain.Question {
	args := m.Called()
	return args.Get(0).([]domain.Question)
}

// --- Fixtures ---

func question(id int, correct string) domain.Question {
	return domain.Question{
		ID:       id,
		Text:     "question text",
		Category: domain.CategoryEvents,
		Options: []domain.Option{
			{ID: "A", Text: "option A"},
			{ID: "B", Text: "option B"},
			{ID: "C", Text: "option C"},
			{ID: "D", Text: "option D"},
		},
		CorrectOptionID: correct,
	}
}

func tenQuestionBank() *MockQuestionBank {
	questions := make([]domain.Question, 0, 10)
	for i := 1; i <= 10; i++ {
		questions = append(questions, question(i, "A"))
	}
	bank := new(MockQuestionBank)
	bank.On("Questions").Return(questions)
	return bank
}

func twoQuestionBank() *MockQuestionBank {
	bank := new(MockQuestionBank)
	bank.On("Questions").Return([]domain.Question{
		question(1, "A"),
		question(2, "B"),
	})
	return bank
}

// --- Tests ---

func TestSessionService_InitializeShufflesFullBank(t *testing.T) {
	svc := NewSessionService(tenQuestionBank())

	session := svc.Session()
	assert.NotEmpty(t, session.ID)
	assert.Len(t, session.Questions, 10)
	assert.Empty(t, session.Answers)
	assert.False(t, session.Submitted)
	assert.Zero(t, session.Score)

	ids := make([]int, 0, len(session.Questions))
	for _, q := range session.Questions {
		ids = append(ids, q.ID)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids)
}

func TestSessionService_SelectOptionRecordsAndOverwrites(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())

	require.NoError(t, svc.SelectOption(1, "C"))
	assert.Equal(t, "C", svc.Session().Answers[1])

	// Changing an answer overwrites, never appends.
	require.NoError(t, svc.SelectOption(1, "A"))
	session := svc.Session()
	assert.Equal(t, "A", session.Answers[1])
	assert.Equal(t, 1, session.AnsweredCount())
}

func TestSessionService_SelectOptionUnknownQuestion(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())

	err := svc.SelectOption(99, "A")
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeUnknownQuestion, domainErr.Code)
	assert.Empty(t, svc.Session().Answers)
}

func TestSessionService_SelectOptionInvalidOption(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())

	err := svc.SelectOption(1, "Z")
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidOption, domainErr.Code)
	assert.Empty(t, svc.Session().Answers)
}

func TestSessionService_SubmitScoresPartialSession(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())

	// Scenario: q1 answered correctly, q2 answered wrong.
	require.NoError(t, svc.SelectOption(1, "A"))
	require.NoError(t, svc.SelectOption(2, "C"))

	session := svc.Submit()
	assert.True(t, session.Submitted)
	assert.Equal(t, domain.PointsPerQuestion, session.Score)
}

func TestSessionService_SubmitAllCorrect(t *testing.T) {
	svc := NewSessionService(tenQuestionBank())

	for _, q := range svc.Session().Questions {
		require.NoError(t, svc.SelectOption(q.ID, "A"))
	}
	assert.True(t, svc.IsComplete())

	session := svc.Submit()
	assert.Equal(t, 100, session.Score)
	assert.Equal(t, 100, session.MaxScore())
}

func TestSessionService_SubmitNoAnswers(t *testing.T) {
	svc := NewSessionService(tenQuestionBank())

	session := svc.Submit()
	assert.True(t, session.Submitted)
	assert.Zero(t, session.Score)
}

func TestSessionService_SubmitIsIdempotent(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())
	require.NoError(t, svc.SelectOption(1, "A"))

	first := svc.Submit()
	second := svc.Submit()

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Answers, second.Answers)
	assert.Equal(t, first.SubmittedAt, second.SubmittedAt)
}

func TestSessionService_FrozenAfterSubmit(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())
	require.NoError(t, svc.SelectOption(1, "A"))
	svc.Submit()

	err := svc.SelectOption(2, "B")
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeAlreadySubmitted, domainErr.Code)

	session := svc.Session()
	assert.Equal(t, map[int]string{1: "A"}, session.Answers)
	assert.Equal(t, domain.PointsPerQuestion, session.Score)
}

func TestSessionService_ReinitializeDiscardsSubmission(t *testing.T) {
	svc := NewSessionService(tenQuestionBank())
	for _, q := range svc.Session().Questions {
		require.NoError(t, svc.SelectOption(q.ID, "A"))
	}
	submitted := svc.Submit()
	assert.Equal(t, 100, submitted.Score)

	fresh := svc.Initialize()
	assert.False(t, fresh.Submitted)
	assert.Empty(t, fresh.Answers)
	assert.Zero(t, fresh.Score)
	assert.NotEqual(t, submitted.ID, fresh.ID)

	// Same ten underlying questions, newly ordered.
	submittedIDs := make([]int, 0, 10)
	freshIDs := make([]int, 0, 10)
	for i := range submitted.Questions {
		submittedIDs = append(submittedIDs, submitted.Questions[i].ID)
		freshIDs = append(freshIDs, fresh.Questions[i].ID)
	}
	assert.ElementsMatch(t, submittedIDs, freshIDs)
}

func TestSessionService_IsComplete(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())
	assert.False(t, svc.IsComplete())

	require.NoError(t, svc.SelectOption(1, "D"))
	assert.False(t, svc.IsComplete())

	require.NoError(t, svc.SelectOption(2, "D"))
	assert.True(t, svc.IsComplete())
}

func TestSessionService_SnapshotIsReadOnly(t *testing.T) {
	svc := NewSessionService(twoQuestionBank())
	require.NoError(t, svc.SelectOption(1, "A"))

	snapshot := svc.Session()
	snapshot.Answers[2] = "B"

	assert.Equal(t, 1, svc.Session().AnsweredCount())
}
