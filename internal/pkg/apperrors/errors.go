package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog errors
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course with this code already exists")
	ErrMissingFields    = errors.New("all fields are required")

	// ErrCatalogCorrupted indicates the persisted catalog file could not be
	// parsed. It is never recovered; it surfaces as a server error.
	ErrCatalogCorrupted = errors.New("catalog file is corrupted")
)

// ValidationError carries the names of the form fields that were missing or
// empty on a course submission. It wraps ErrMissingFields so callers can
// branch with errors.Is.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrMissingFields, strings.Join(e.Fields, ", "))
}

// Unwrap implements the errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrMissingFields
}

// NewValidationError creates a ValidationError for the given field names
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
