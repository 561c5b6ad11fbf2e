// Package errors defines the application error hierarchy shared between the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"locator/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Name, address, city, and country are required fields.",
		"",
	)

	// Geocoding-related errors
	ErrGeocodingFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOCODING_FAILED",
		"Could not find coordinates for the address. Please verify the address is correct.",
		"",
	)

	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found.",
		"",
	)

	ErrLocationCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATION_CREATE_FAILED",
		"An error occurred while creating the location.",
		"",
	)

	ErrLocationUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATION_UPDATE_FAILED",
		"An error occurred while updating the location.",
		"",
	)

	ErrLocationDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATION_DELETE_FAILED",
		"An error occurred while deleting the location.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database error as an internal
// AppError, preserving the cause in the details.
func NewDatabaseExecuteError(err error, message string) AppError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
