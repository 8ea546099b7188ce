package dto

// OptionResponse represents one answer choice in the API response
type OptionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuestionResponse represents a question in the API response.
// CorrectOptionID and IsCorrect are only populated once the session has been
// submitted; before that the answer key stays server-side.
type QuestionResponse struct {
	ID               int              `json:"id"`
	Question         string           `json:"question"`
	Category         string           `json:"category"`
	Options          []OptionResponse `json:"options"`
	SelectedOptionID string           `json:"selected_option_id,omitempty"`
	CorrectOptionID  string           `json:"correct_option_id,omitempty"`
	IsCorrect        *bool            `json:"is_correct,omitempty"`
}

// SessionResponse represents the current quiz session in the API response
type SessionResponse struct {
	SessionID      string             `json:"session_id"`
	Questions      []QuestionResponse `json:"questions"`
	AnsweredCount  int                `json:"answered_count"`
	TotalQuestions int                `json:"total_questions"`
	IsComplete     bool               `json:"is_complete"`
	IsSubmitted    bool               `json:"is_submitted"`
	Score          int                `json:"score"`
	MaxScore       int                `json:"max_score"`
}

// SelectOptionRequest represents an answer selection in the API request
type SelectOptionRequest struct {
	QuestionID int    `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// SubmitResponse represents the scoring result in the API response
type SubmitResponse struct {
	SessionID      string  `json:"session_id"`
	Score          int     `json:"score"`
	MaxScore       int     `json:"max_score"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	Accuracy       float64 `json:"accuracy"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
