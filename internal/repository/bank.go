package repository

import (
	"fmt"
	"os"

	"scratch-quiz/internal/domain"

	"gopkg.in/yaml.v3"
)

// bankFile mirrors the on-disk YAML layout of the question bank.
type bankFile struct {
	Questions []bankQuestion `yaml:"questions"`
}

type bankQuestion struct {
	ID              int          `yaml:"id"`
	Question        string       `yaml:"question"`
	Category        string       `yaml:"category"`
	CorrectOptionID string       `yaml:"correct_option_id"`
	Options         []bankOption `yaml:"options"`
}

type bankOption struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// StaticQuestionBank is an immutable, load-time-fixed question collection.
// It implements domain.QuestionBank.
type StaticQuestionBank struct {
	questions []domain.Question
}

// NewStaticQuestionBank wraps an already-built question slice. The bank
// invariants are validated once here; callers get a fail-fast error instead
// of silent mis-scoring later.
func NewStaticQuestionBank(questions []domain.Question) (*StaticQuestionBank, error) {
	if err := domain.ValidateBank(questions); err != nil {
		return nil, err
	}
	owned := make([]domain.Question, len(questions))
	copy(owned, questions)
	return &StaticQuestionBank{questions: owned}, nil
}

// NewQuestionBankFromFile loads and validates the YAML question bank at path.
func NewQuestionBankFromFile(path string) (*StaticQuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewInvalidQuestionBankError(fmt.Sprintf("failed to read question bank file: %s", path), err)
	}
	return NewQuestionBankFromYAML(data)
}

// NewQuestionBankFromYAML parses and validates a YAML question bank document.
func NewQuestionBankFromYAML(data []byte) (*StaticQuestionBank, error) {
	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.NewInvalidQuestionBankError("failed to parse question bank", err)
	}

	questions := make([]domain.Question, 0, len(file.Questions))
	for _, bq := range file.Questions {
		options := make([]domain.Option, 0, len(bq.Options))
		for _, opt := range bq.Options {
			options = append(options, domain.Option{ID: opt.ID, Text: opt.Text})
		}
		questions = append(questions, domain.Question{
			ID:              bq.ID,
			Text:            bq.Question,
			Category:        domain.Category(bq.Category),
			Options:         options,
			CorrectOptionID: bq.CorrectOptionID,
		})
	}

	return NewStaticQuestionBank(questions)
}

// Questions returns a copy of the full ordered bank.
func (b *StaticQuestionBank) Questions() []domain.Question {
	questions := make([]domain.Question, len(b.questions))
	copy(questions, b.questions)
	return questions
}

// Size returns the number of questions in the bank.
func (b *StaticQuestionBank) Size() int {
	return len(b.questions)
}
