package validation

import (
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", nil, "validation failed: input validation failed"},
		{"Single error", []FieldError{{Field: "name", Message: "name is required"}}, "validation failed: name is required"},
		{"Multiple errors", []FieldError{
			{Field: "name", Message: "name is required"},
			{Field: "id", Message: "id must be a positive integer"},
		}, "validation failed: name is required; id must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.Error(); result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestFieldError_Error(t *testing.T) {
	fe := FieldError{Field: "name", Rule: RuleRequired, Message: "name is required"}
	if got := fe.Error(); got != "name: name is required" {
		t.Errorf("FieldError.Error() = %q", got)
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Errorf("new ValidationError should have no errors")
	}

	ve.AddRequiredError("name")
	if !ve.HasErrors() {
		t.Errorf("ValidationError should report errors after AddRequiredError")
	}
}

func TestValidationError_AddRules(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("name")
	ve.AddMaxLengthError("name", "xxxxxx", 5)
	ve.AddNotPositiveError("id", int64(-1))

	expected := []FieldError{
		{Field: "name", Rule: RuleRequired, Message: "name is required"},
		{Field: "name", Rule: RuleMaxLength, Message: "name must be at most 5 characters long", Value: "xxxxxx"},
		{Field: "id", Rule: RulePositive, Message: "id must be a positive integer", Value: int64(-1)},
	}

	if len(ve.Errors) != len(expected) {
		t.Fatalf("Expected %d errors, got %d", len(expected), len(ve.Errors))
	}
	for i, want := range expected {
		if ve.Errors[i] != want {
			t.Errorf("Errors[%d] = %+v, expected %+v", i, ve.Errors[i], want)
		}
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	empty := NewValidationError()
	if got := empty.GetUserFriendlyMessage(); got != "input validation failed" {
		t.Errorf("unexpected empty message %q", got)
	}

	single := NewValidationError()
	single.AddRequiredError("name")
	if got := single.GetUserFriendlyMessage(); got != "name is required" {
		t.Errorf("unexpected single message %q", got)
	}

	multi := NewValidationError()
	multi.AddRequiredError("name")
	multi.AddNotPositiveError("id", 0)
	if got := multi.GetUserFriendlyMessage(); got != "name is required; id must be a positive integer" {
		t.Errorf("unexpected multi message %q", got)
	}
}
