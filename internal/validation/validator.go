package validation

import (
	"strings"
	"unicode/utf8"

	"todo-api/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	maxNameLength int
}

// NewValidator creates a validator honouring cfg's limits. A nil cfg, or one
// without a name limit, uses the width of the name column.
func NewValidator(cfg *config.Config) *Validator {
	maxNameLength := config.TaskNameColumnWidth
	if cfg != nil && cfg.Validation.TaskNameMaxLength > 0 {
		maxNameLength = cfg.Validation.TaskNameMaxLength
	}
	return &Validator{maxNameLength: maxNameLength}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length, in characters, is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, 1, v.maxNameLength)
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TaskNameMaxLength returns the maximum task name length in characters
func (v *Validator) TaskNameMaxLength() int {
	return v.maxNameLength
}
