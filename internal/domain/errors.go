package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. The prosody core never returns them; they appear at the
// service and storage boundary: unknown bahr signatures (ErrNotFound), a
// catalog signature claimed by two slugs (ErrAlreadyExists) and rejected
// analyze requests or lookup keys (ErrValidation).
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// FieldError names one rejected request field, e.g. "text" or "mode".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field problem of one request. The REST
// layer renders Errors as the "fields" list of a 400 response.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports a single bad field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors wraps the field errors gathered by an input's Validate.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
