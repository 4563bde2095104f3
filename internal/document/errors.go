package document

import (
	"errors"
	"fmt"
)

// Common document errors
var (
	// ErrUnknownDocumentType is returned when a document type has no registry entry.
	// It is fatal to document generation; no fallback type is guessed.
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrValidationFailed is returned when submitted form values violate field constraints.
	ErrValidationFailed = errors.New("document form validation failed")

	// ErrNoDraft is returned when an operation needs a draft but no type was selected.
	ErrNoDraft = errors.New("no document draft selected")
)

// DocumentError wraps errors with the operation and document type that failed.
type DocumentError struct {
	// Op is the operation that failed (e.g., "Select", "Submit").
	Op string

	// Type is the document type involved, if known.
	Type Type

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("document: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	if e.Type != "" {
		return fmt.Sprintf("document: %s failed (type: %s): %v", e.Op, e.Type, e.Err)
	}
	return fmt.Sprintf("document: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *DocumentError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapDocumentError wraps an error as a DocumentError if it isn't already one.
func WrapDocumentError(op string, t Type, err error) error {
	if err == nil {
		return nil
	}

	var docErr *DocumentError
	if errors.As(err, &docErr) {
		return err
	}

	return &DocumentError{Op: op, Type: t, Err: err}
}

// ValidationError describes a single form field that failed validation.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// FieldErrors collects every ValidationError contained in err.
func FieldErrors(err error) []*ValidationError {
	var out []*ValidationError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if ve, ok := e.(*ValidationError); ok {
			out = append(out, ve)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}
