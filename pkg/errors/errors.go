package errors

import (
	"errors"
	"fmt"
	"net/http"

	"zookeepr/domain/core/entities"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Client errors
	ErrorTypeValidation ErrorType = "VALIDATION"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"

	// Server errors
	ErrorTypeInternal ErrorType = "INTERNAL"
	ErrorTypeStorage  ErrorType = "STORAGE"
)

// MalformedAnimalMessage is the client-facing message for rejected records
const MalformedAnimalMessage = "The animal is not properly formatted."

// AppError is an error ready to be rendered as an API response
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, HTTPStatus: http.StatusInternalServerError}
}

// NewStorageError creates an error for a failed read or write of durable storage
func NewStorageError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStorage,
		Message:    fmt.Sprintf("storage operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// fieldReporter is implemented by validation failures that know which
// record fields were rejected
type fieldReporter interface {
	FieldErrors() map[string]string
}

// Classify finds the AppError describing err. An AppError anywhere in the
// chain wins; otherwise the catalog sentinels are mapped to their client
// errors. Anything else returns nil.
func Classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, entities.ErrAnimalMalformed):
		malformed := NewValidationError(MalformedAnimalMessage).WithCause(err)
		var reporter fieldReporter
		if errors.As(err, &reporter) {
			fields := make(map[string]interface{})
			for field, msg := range reporter.FieldErrors() {
				fields[field] = msg
			}
			malformed.Details = map[string]interface{}{"fields": fields}
		}
		return malformed
	case errors.Is(err, entities.ErrAnimalNotFound):
		return NewNotFoundError("animal").WithCause(err)
	}
	return nil
}

// IsType checks if an error classifies as errType
func IsType(err error, errType ErrorType) bool {
	appErr := Classify(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsStorage checks if an error is a storage error
func IsStorage(err error) bool {
	return IsType(err, ErrorTypeStorage)
}
