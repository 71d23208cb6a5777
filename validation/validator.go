package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kbukum/walletmock/errors"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an invalid-params ProviderRpcError if there are
// validation errors, nil otherwise.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	return errors.NewRpcError(errors.CodeInvalidParams, strings.Join(messages, "; ")).
		WithData(map[string]any{"fields": v.errors})
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// ChainID checks that a non-empty value is a hex chain id.
func (v *Validator) ChainID(field, value string) *Validator {
	if value != "" && !IsChainID(value) {
		v.AddError(field, "must be a 0x-prefixed hexadecimal chain id")
	}
	return v
}

// Address checks that a non-empty value is a 20-byte hex address.
func (v *Validator) Address(field, value string) *Validator {
	if value != "" && !addressPattern.MatchString(value) {
		v.AddError(field, "must be a valid Ethereum address")
	}
	return v
}

// Check adds an error if condition is false.
func (v *Validator) Check(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}
