package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error for transport mapping.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// AppError is the structured error surfaced at the HTTP boundary. Business
// rule failures carry their kind and a human-readable message; unexpected
// failures keep the cause for logging but never leak it to the caller.
type AppError struct {
	Kind       Kind   `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message, StatusCode: http.StatusUnauthorized}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message, StatusCode: http.StatusForbidden}
}

func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found", StatusCode: http.StatusNotFound}
}

// NewConflict reports an operation applied to a record already in a terminal
// state. The listing API contract maps it to 400, not 409.
func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, StatusCode: http.StatusBadRequest}
}

func NewInternal(message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message, StatusCode: http.StatusInternalServerError}
}

// From extracts the *AppError from err's chain, or wraps err as an internal
// error when it carries no classification.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("internal server error").WithCause(err)
}
