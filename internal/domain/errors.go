package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Session specific errors
	CodeNotSubmitted     ErrorCode = "NOT_SUBMITTED"
	CodeAlreadySubmitted ErrorCode = "ALREADY_SUBMITTED"
	CodeUnknownQuestion  ErrorCode = "UNKNOWN_QUESTION"
	CodeInvalidOption    ErrorCode = "INVALID_OPTION"

	// Question bank errors
	CodeInvalidQuestionBank ErrorCode = "INVALID_QUESTION_BANK"

	// Request validation errors
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewNotSubmittedError() *DomainError {
	return NewError(CodeNotSubmitted, "Session has not been submitted yet", nil)
}

func NewAlreadySubmittedError() *DomainError {
	return NewError(CodeAlreadySubmitted, "Session has already been submitted", nil)
}

func NewUnknownQuestionError(questionID int) *DomainError {
	return NewError(CodeUnknownQuestion, fmt.Sprintf("Question not part of the current session: %d", questionID), nil)
}

func NewInvalidOptionError(questionID int, optionID string) *DomainError {
	return NewError(CodeInvalidOption, fmt.Sprintf("Option %q is not valid for question %d", optionID, questionID), nil)
}

func NewInvalidQuestionBankError(message string, cause error) *DomainError {
	return NewError(CodeInvalidQuestionBank, message, cause)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: "is required",
		Code:    CodeMissingField,
	}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("has invalid format: %q", value),
		Code:    CodeInvalidFormat,
	}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max),
		Code:    CodeOutOfRange,
	}
}
