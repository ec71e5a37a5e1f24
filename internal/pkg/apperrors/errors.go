package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrInvalidFilter    = errors.New("invalid cohort filter")
)

// Student Errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrInvalidMoodSeries = errors.New("invalid mood series")
	ErrInvalidScore      = errors.New("screening score out of range")
)

// Counsellor Errors
var (
	ErrCounsellorNotFound = errors.New("counsellor not found")
	ErrCounsellorInactive = errors.New("counsellor is already inactive")
	ErrPasswordMismatch   = errors.New("passwords must match")
)

// Community Errors
var (
	ErrPostNotFound = errors.New("post not found")
)

// Notification Errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NewNotFoundError creates a CustomError for a missing record of the given kind.
// The result matches both kind and ErrResourceNotFound.
func NewNotFoundError(kind error, id string) *CustomError {
	err := kind
	if !errors.Is(kind, ErrResourceNotFound) {
		err = fmt.Errorf("%w: %w", ErrResourceNotFound, kind)
	}
	return NewCustomError(err, fmt.Sprintf("%s: %s", kind.Error(), id)).
		WithCode("NOT_FOUND").
		WithDetails(map[string]interface{}{"id": id})
}

// NewValidationError creates a CustomError for an invalid field.
// kind is wrapped so callers can match the specific cause as well as ErrValidationFailed.
func NewValidationError(kind error, field, message string) *CustomError {
	err := kind
	if !errors.Is(kind, ErrValidationFailed) {
		err = fmt.Errorf("%w: %w", ErrValidationFailed, kind)
	}
	return NewCustomError(err, fmt.Sprintf("%s: %s", field, message)).
		WithCode("VALIDATION_FAILED").
		WithDetails(map[string]interface{}{"field": field})
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) *CustomError {
	return NewCustomError(ErrConflict, message).WithCode("CONFLICT")
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
