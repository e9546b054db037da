package errors

import (
	"errors"
	"fmt"
)

// userMessager is implemented by causes whose text is written for end users,
// such as field validation failures.
type userMessager interface {
	GetUserFriendlyMessage() string
}

// NewValidationError creates a new validation error. Only causes that carry a
// user-facing message are ever shown to callers.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, Cause: cause}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
	}
}

// NewStoreUnavailableError creates an error for a failed or unreachable store
func NewStoreUnavailableError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStoreUnavailable,
		Message: fmt.Sprintf("store operation failed: %s", operation),
		Cause:   cause,
	}
}

// NewInvalidInputError creates an error for a malformed request or argument
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	message := fmt.Sprintf("invalid input for %s: %s", field, reason)
	if value != nil {
		return &AppError{Type: ErrorTypeInvalidInput, Message: message, Cause: fmt.Errorf("got %v", value)}
	}
	return &AppError{Type: ErrorTypeInvalidInput, Message: message}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a message safe to show to API clients and CLI users.
// Driver and network error text never appears in it.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch appErr.Type {
	case ErrorTypeValidation:
		var detail userMessager
		if errors.As(appErr.Cause, &detail) {
			return appErr.Message + ": " + detail.GetUserFriendlyMessage()
		}
		return appErr.Message
	case ErrorTypeNotFound, ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeStoreUnavailable:
		return "The task store is unavailable. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type.Code()
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged at error level
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
