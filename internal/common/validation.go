package common

import "strings"

// ValidationError carries field-level messages for rejected input.
// It is matched with errors.As and rendered by the HTTP layer as a
// 422 response with the collected messages.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
