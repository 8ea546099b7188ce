package domain

import "time"

// UnansweredMarker is the sentinel shown when no answer was recorded for a
// question, or the recorded option id matches none of its options.
const UnansweredMarker = "未作答"

// ExportRow is one detail line of a quiz report.
type ExportRow struct {
	Index             int
	QuestionText      string
	UserAnswerText    string
	CorrectAnswerText string
	IsCorrect         bool
	Category          Category
}

// ExportRecord is a read-only snapshot of a submitted session, shaped for the
// report writer. It is computed once and never mutated afterwards.
type ExportRecord struct {
	Date           time.Time
	TotalScore     int
	MaxScore       int
	CorrectCount   int
	TotalQuestions int
	Accuracy       float64
	Rows           []ExportRow
}
