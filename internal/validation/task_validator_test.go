package validation

import (
	"strings"
	"testing"

	"todo-api/internal/config"
)

func TestTaskValidator_ValidateTaskName(t *testing.T) {
	validator := NewTaskValidator(nil)

	tests := []struct {
		name        string
		input       string
		expectError bool
		rule        Rule
	}{
		{"Valid name", "Buy milk", false, ""},
		{"Empty name", "", true, RuleRequired},
		{"Whitespace only", "   ", true, RuleRequired},
		{"Too long name", strings.Repeat("a", 46), true, RuleMaxLength},
		{"Max length name", strings.Repeat("a", 45), false, ""},
		{"Max length after trimming", "  " + strings.Repeat("a", 45) + "  ", false, ""},
		{"Multibyte name within limit", strings.Repeat("é", 45), false, ""},
		{"Punctuation allowed", "Task@#$% (urgent)!", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskName(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateTaskName(%q) expected error but got nil", tt.input)
					return
				}

				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Errorf("ValidateTaskName(%q) expected ValidationError but got %T", tt.input, err)
					return
				}

				if len(validationErr.Errors) == 0 {
					t.Errorf("ValidateTaskName(%q) expected validation errors but got none", tt.input)
					return
				}

				if validationErr.Errors[0].Rule != tt.rule {
					t.Errorf("ValidateTaskName(%q) expected rule %v but got %v", tt.input, tt.rule, validationErr.Errors[0].Rule)
				}
			} else if err != nil {
				t.Errorf("ValidateTaskName(%q) expected no error but got %v", tt.input, err)
			}
		})
	}
}

func TestTaskValidator_ConfiguredMaxLength(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TaskNameMaxLength = 5
	validator := NewTaskValidator(cfg)

	if err := validator.ValidateTaskName("abcde"); err != nil {
		t.Errorf("expected 5 chars to pass, got %v", err)
	}
	err := validator.ValidateTaskName("abcdef")
	if err == nil {
		t.Fatal("expected 6 chars to fail")
	}
	if !strings.Contains(err.Error(), "at most 5 characters") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator(nil)

	tests := []struct {
		name        string
		id          int64
		expectError bool
	}{
		{"Valid ID", 1, false},
		{"Zero ID", 0, true},
		{"Negative ID", -1, true},
		{"Large ID", 999999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskID(tt.id)

			if tt.expectError && err == nil {
				t.Errorf("ValidateTaskID(%d) expected error but got nil", tt.id)
			} else if !tt.expectError && err != nil {
				t.Errorf("ValidateTaskID(%d) expected no error but got %v", tt.id, err)
			}
		})
	}
}

func TestTaskValidator_GetValidTaskName(t *testing.T) {
	validator := NewTaskValidator(nil)

	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{"Valid name", "Task 1", "Task 1", false},
		{"Name with spaces", "  Task 1  ", "Task 1", false},
		{"Empty name", "", "", true},
		{"Whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.GetValidTaskName(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("GetValidTaskName(%q) expected error but got nil", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("GetValidTaskName(%q) expected no error but got %v", tt.input, err)
				}
				if result != tt.expected {
					t.Errorf("GetValidTaskName(%q) = %q, expected %q", tt.input, result, tt.expected)
				}
			}
		})
	}
}
