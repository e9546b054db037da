package validation

import (
	"fmt"
	"strings"
)

// Rule names the check a field failed
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMaxLength Rule = "max_length"
	RulePositive  Rule = "positive"
)

// FieldError is one rejected field
type FieldError struct {
	Field   string
	Rule    Rule
	Message string
	Value   interface{}
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidationError collects every rejected field of one input. Its messages
// are written for end users.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError ready to collect field errors
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

func (ve *ValidationError) Error() string {
	return "validation failed: " + ve.GetUserFriendlyMessage()
}

// HasErrors returns true if any field was rejected
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationError) add(field string, rule Rule, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Rule: rule, Message: message, Value: value})
}

// AddRequiredError records a missing or blank field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.add(field, RuleRequired, field+" is required", nil)
}

// AddMaxLengthError records a value longer than max characters
func (ve *ValidationError) AddMaxLengthError(field string, value interface{}, max int) {
	ve.add(field, RuleMaxLength, fmt.Sprintf("%s must be at most %d characters long", field, max), value)
}

// AddNotPositiveError records an identifier that is zero or negative
func (ve *ValidationError) AddNotPositiveError(field string, value interface{}) {
	ve.add(field, RulePositive, field+" must be a positive integer", value)
}

// GetUserFriendlyMessage joins the field messages for display
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "input validation failed"
	}
	messages := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}
