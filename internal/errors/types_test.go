package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
		code      string
	}{
		{"Validation", ErrorTypeValidation, "validation", "VALIDATION_FAILED"},
		{"NotFound", ErrorTypeNotFound, "not_found", "NOT_FOUND"},
		{"StoreUnavailable", ErrorTypeStoreUnavailable, "store_unavailable", "STORE_UNAVAILABLE"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input", "INVALID_INPUT"},
		{"Unknown", ErrorType(999), "unknown", "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.errorType.String(); result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
			if code := tt.errorType.Code(); code != tt.code {
				t.Errorf("ErrorType.Code() = %v, want %v", code, tt.code)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStoreUnavailable,
				Message: "connection failed",
				Cause:   errors.New("timeout"),
			},
			expected: "store_unavailable: connection failed (caused by: timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeStoreUnavailable,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause through AppError")
	}
}

func TestAppError_IsType(t *testing.T) {
	appError := &AppError{
		Type:    ErrorTypeValidation,
		Message: "test error",
	}

	if !appError.IsType(ErrorTypeValidation) {
		t.Errorf("AppError.IsType() = false, want true for matching type")
	}

	if appError.IsType(ErrorTypeStoreUnavailable) {
		t.Errorf("AppError.IsType() = true, want false for different type")
	}
}
