package errors

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by hosts when the user dismisses a picker.
var ErrCancelled = errors.New("selection cancelled")

// ParseError represents a failure to parse configuration or a textual
// date/time value. Source is a file path or the raw input.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %q: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and value validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
