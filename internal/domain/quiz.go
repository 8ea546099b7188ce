package domain

import "fmt"

// Category is the Scratch block palette a question belongs to.
// It carries no scoring semantics and exists for display and grouping only.
type Category string

const (
	CategoryMotion    Category = "Motion"
	CategoryLooks     Category = "Looks"
	CategorySound     Category = "Sound"
	CategoryEvents    Category = "Events"
	CategoryControl   Category = "Control"
	CategorySensing   Category = "Sensing"
	CategoryOperators Category = "Operators"
	CategoryVariables Category = "Variables"
)

// Categories returns the closed set of valid categories.
func Categories() []Category {
	return []Category{
		CategoryMotion,
		CategoryLooks,
		CategorySound,
		CategoryEvents,
		CategoryControl,
		CategorySensing,
		CategoryOperators,
		CategoryVariables,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMotion, CategoryLooks, CategorySound, CategoryEvents,
		CategoryControl, CategorySensing, CategoryOperators, CategoryVariables:
		return true
	}
	return false
}

// Option is one answer choice within a question. The ID is a short token
// ("A".."D" in the reference data), unique within its parent question.
type Option struct {
	ID   string
	Text string
}

// Question is a single multiple-choice question. Questions are loaded once
// from the bank and never mutated afterwards.
type Question struct {
	ID              int
	Text            string
	Category        Category
	Options         []Option
	CorrectOptionID string
}

// OptionText returns the display text of the option with the given id.
func (q *Question) OptionText(optionID string) (string, bool) {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt.Text, true
		}
	}
	return "", false
}

// HasOption reports whether optionID identifies one of the question's options.
func (q *Question) HasOption(optionID string) bool {
	_, ok := q.OptionText(optionID)
	return ok
}

// Validate validates a single question
func (q *Question) Validate() error {
	if q.ID <= 0 {
		return NewInvalidQuestionBankError(fmt.Sprintf("question has non-positive id: %d", q.ID), nil)
	}
	if q.Text == "" {
		return NewInvalidQuestionBankError(fmt.Sprintf("question %d has empty text", q.ID), nil)
	}
	if !q.Category.IsValid() {
		return NewInvalidQuestionBankError(fmt.Sprintf("question %d has unknown category: %q", q.ID, q.Category), nil)
	}
	if len(q.Options) == 0 {
		return NewInvalidQuestionBankError(fmt.Sprintf("question %d has no options", q.ID), nil)
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt.ID == "" {
			return NewInvalidQuestionBankError(fmt.Sprintf("question %d has an option with empty id", q.ID), nil)
		}
		if _, dup := seen[opt.ID]; dup {
			return NewInvalidQuestionBankError(fmt.Sprintf("question %d has duplicate option id: %q", q.ID, opt.ID), nil)
		}
		seen[opt.ID] = struct{}{}
	}
	if _, ok := seen[q.CorrectOptionID]; !ok {
		return NewInvalidQuestionBankError(fmt.Sprintf("question %d correct option %q not among options", q.ID, q.CorrectOptionID), nil)
	}
	return nil
}

// QuestionBank supplies the static universe of quiz questions.
type QuestionBank interface {
	// Questions returns the full ordered bank. The returned slice is the
	// caller's to keep; implementations must not hand out shared state.
	Questions() []Question
}

// ValidateBank checks the bank-level invariants once at load time. Malformed
// bank data is a configuration fault and must fail fast instead of silently
// mis-scoring later.
func ValidateBank(questions []Question) error {
	if len(questions) == 0 {
		return NewInvalidQuestionBankError("question bank is empty", nil)
	}
	seen := make(map[int]struct{}, len(questions))
	for i := range questions {
		q := &questions[i]
		if err := q.Validate(); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return NewInvalidQuestionBankError(fmt.Sprintf("duplicate question id: %d", q.ID), nil)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}
