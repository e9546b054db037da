package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fieldProblem stands in for a validation failure written for end users.
type fieldProblem struct{ msg string }

func (f *fieldProblem) Error() string { return "validation error for field 'name': " + f.msg }
func (f *fieldProblem) GetUserFriendlyMessage() string { return f.msg }

func TestNewValidationError(t *testing.T) {
	cause := &fieldProblem{msg: "name is required"}
	err := NewValidationError("invalid task name", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "invalid task name" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "invalid task name")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 42" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 42")
	}
	if err.Cause != nil {
		t.Errorf("NewNotFoundError cause = %v, want nil", err.Cause)
	}
}

func TestNewStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreUnavailableError("list tasks", cause)

	if err.Type != ErrorTypeStoreUnavailable {
		t.Errorf("NewStoreUnavailableError type = %v, want %v", err.Type, ErrorTypeStoreUnavailable)
	}
	if err.Message != "store operation failed: list tasks" {
		t.Errorf("NewStoreUnavailableError message = %v, want %v", err.Message, "store operation failed: list tasks")
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewStoreUnavailableError should unwrap to its cause")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("id", "abc", "must be an integer")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for id: must be an integer" {
		t.Errorf("NewInvalidInputError message = %v, want %v", err.Message, "invalid input for id: must be an integer")
	}
	if err.Cause == nil || err.Cause.Error() != "got abc" {
		t.Errorf("NewInvalidInputError should keep the rejected value in its cause, got %v", err.Cause)
	}

	if NewInvalidInputError("body", nil, "malformed JSON").Cause != nil {
		t.Errorf("NewInvalidInputError without a value should have no cause")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	result, ok := AsAppError(fmt.Errorf("wrapped: %w", appError))
	if !ok {
		t.Errorf("AsAppError should return true for a wrapped AppError")
	}
	if result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(regularError)
	if ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if result != nil {
		t.Errorf("AsAppError should return nil for regular error")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeStoreUnavailable) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for regular error")
	}

	if IsErrorType(nil, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return false for nil")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid task name", nil),
			expected: "invalid task name",
		},
		{
			name:     "Validation error with field detail",
			err:      NewValidationError("invalid task name", &fieldProblem{msg: "name is required"}),
			expected: "invalid task name: name is required",
		},
		{
			name:     "Validation error with field detail wrapped",
			err:      NewValidationError("invalid task name", fmt.Errorf("check: %w", &fieldProblem{msg: "name is required"})),
			expected: "invalid task name: name is required",
		},
		{
			name:     "Validation error hides driver cause",
			err:      NewValidationError("task name is too long", errors.New("Error 1406 (22001): Data too long for column 'name' at row 1")),
			expected: "task name is too long",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Invalid input error",
			err:      NewInvalidInputError("id", "x", "must be an integer"),
			expected: "invalid input for id: must be an integer",
		},
		{
			name:     "Store error hides cause",
			err:      NewStoreUnavailableError("query", errors.New("dial tcp 10.0.0.1:3306: refused")),
			expected: "The task store is unavailable. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "An unexpected error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
			if strings.Contains(result, "1406") || strings.Contains(result, "dial tcp") {
				t.Errorf("GetUserMessage() leaked internal error text: %v", result)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{NewValidationError("bad", nil), "VALIDATION_FAILED"},
		{NewNotFoundError("task", "1"), "NOT_FOUND"},
		{NewStoreUnavailableError("ping", nil), "STORE_UNAVAILABLE"},
		{NewInvalidInputError("id", nil, "bad"), "INVALID_INPUT"},
		{fmt.Errorf("wrapped: %w", NewNotFoundError("task", "1")), "NOT_FOUND"},
		{errors.New("regular error"), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		if got := GetErrorCode(tt.err); got != tt.expected {
			t.Errorf("GetErrorCode(%v) = %v, want %v", tt.err, got, tt.expected)
		}
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: false,
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: false,
		},
		{
			name:     "Invalid input error",
			err:      NewInvalidInputError("id", "invalid", "format"),
			expected: false,
		},
		{
			name:     "Store error",
			err:      NewStoreUnavailableError("query", errors.New("timeout")),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
