package validation

import (
	"regexp"
	"strings"

	"scratch-quiz/internal/domain"
)

// optionIDPattern matches short option tokens such as "A".."D". The bank may
// use longer tokens, but anything past a few characters is a malformed request.
var optionIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSelectOptionRequest validates the answer selection request
func (v *Validator) ValidateSelectOptionRequest(questionID int, optionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if questionID == 0 {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if questionID < 0 {
		errors = append(errors, domain.NewOutOfRangeError("question_id", questionID, 1, int(^uint(0)>>1)))
	}

	if strings.TrimSpace(optionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("option_id"))
	} else if !optionIDPattern.MatchString(optionID) {
		errors = append(errors, domain.NewInvalidFormatError("option_id", optionID))
	}

	return errors
}
