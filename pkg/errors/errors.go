// Package errors provides structured error handling for the application.
// Every failure that crosses a component boundary is an *AppError carrying
// a stable code; the HTTP layer maps codes to status responses.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure class.
type ErrorCode string

const (
	// Client errors
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"

	// Server errors
	CodeInternal              ErrorCode = "INTERNAL_ERROR"
	CodeClassifierUnavailable ErrorCode = "CLASSIFIER_UNAVAILABLE"
	CodePersistenceFailure    ErrorCode = "PERSISTENCE_FAILURE"
	CodeExternalService       ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// CodeUnknownMood never leaves the process: the scorer degrades to the
	// neutral catalog instead of failing. It exists so the degradation can
	// be logged with a stable code.
	CodeUnknownMood ErrorCode = "UNKNOWN_MOOD"
)

// AppError is the application error type.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode maps the error code to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeClassifierUnavailable, CodeExternalService:
		return http.StatusBadGateway
	case CodePersistenceFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WithCause attaches a cause error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new application error.
func New(code ErrorCode, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError reports rejected input before any core logic runs.
func NewValidationError(details string) *AppError {
	return New(CodeValidationFailed, "invalid input", details)
}

// NewClassifierUnavailableError reports that the emotion classifier produced
// no usable output, which is fatal to the current mood analysis.
func NewClassifierUnavailableError(cause error) *AppError {
	return New(CodeClassifierUnavailable, "emotion classifier returned no usable output", "").WithCause(cause)
}

// NewPersistenceError reports a failed profile read or write.
func NewPersistenceError(op string, cause error) *AppError {
	return New(CodePersistenceFailure, "profile persistence failed", op).WithCause(cause)
}

// NewExternalServiceError reports a failed call to an external collaborator
// that could not be degraded locally.
func NewExternalServiceError(service string, cause error) *AppError {
	return New(CodeExternalService, "external service call failed", service).WithCause(cause)
}

// Code extracts the ErrorCode from err, or CodeInternal when err is not an
// *AppError.
func Code(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return Code(err) == code
}

// AsAppError converts err to an *AppError, wrapping foreign errors as
// internal so the boundary always has a structured value to translate.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(CodeInternal, "internal error", "").WithCause(err)
}
