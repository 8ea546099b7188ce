package domain

import "time"

// PointsPerQuestion is the fixed score awarded for each correct answer.
const PointsPerQuestion = 10

// QuizSession is the aggregate root for one quiz attempt: a shuffled copy of
// the question bank, the user's answers so far and, once submitted, the final
// score. A session is replaced wholesale by re-initialization; there is no
// partial reset.
type QuizSession struct {
	ID          string
	Questions   []Question
	Answers     map[int]string // question id -> selected option id
	Submitted   bool
	Score       int
	StartedAt   time.Time
	SubmittedAt time.Time
}

// QuestionByID returns the session's question with the given id.
func (s *QuizSession) QuestionByID(questionID int) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *QuizSession) AnsweredCount() int {
	return len(s.Answers)
}

// IsComplete reports whether every question has a recorded answer. It is a
// pure query computed on demand; the engine does not gate submission on it.
func (s *QuizSession) IsComplete() bool {
	if len(s.Questions) == 0 {
		return false
	}
	for i := range s.Questions {
		if _, ok := s.Answers[s.Questions[i].ID]; !ok {
			return false
		}
	}
	return true
}

// MaxScore returns the highest score attainable for this session.
func (s *QuizSession) MaxScore() int {
	return PointsPerQuestion * len(s.Questions)
}

// Clone returns a snapshot of the session that the caller may read freely.
// Questions are immutable after load, so the slice is copied shallowly; the
// answer map is copied deeply.
func (s *QuizSession) Clone() *QuizSession {
	questions := make([]Question, len(s.Questions))
	copy(questions, s.Questions)
	answers := make(map[int]string, len(s.Answers))
	for id, optionID := range s.Answers {
		answers[id] = optionID
	}
	return &QuizSession{
		ID:          s.ID,
		Questions:   questions,
		Answers:     answers,
		Submitted:   s.Submitted,
		Score:       s.Score,
		StartedAt:   s.StartedAt,
		SubmittedAt: s.SubmittedAt,
	}
}
