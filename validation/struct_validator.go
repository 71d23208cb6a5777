package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/walletmock/errors"
)

var (
	validate *validator.Validate
	once     sync.Once

	chainIDPattern = regexp.MustCompile(`^0x(0|[1-9a-fA-F][0-9a-fA-F]*)$`)
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use mapstructure, then json tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"mapstructure", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return toSnakeCase(fld.Name)
		})

		_ = validate.RegisterValidation("chainid", func(fl validator.FieldLevel) bool {
			return IsChainID(fl.Field().String())
		})
	})
	return validate
}

// IsChainID reports whether s is a 0x-prefixed hexadecimal quantity
// without leading zeros, the encoding EIP-1193 uses for chain ids.
func IsChainID(s string) bool {
	return chainIDPattern.MatchString(s)
}

// Validate validates a struct using struct tags.
// Uses tags like `validate:"required,chainid"` or `validate:"dive,eth_addr"`.
func Validate(s any) error {
	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewRpcError(errors.CodeInvalidParams, "validation failed")
	}

	collector := New()
	for _, e := range validationErrors {
		collector.AddError(fieldPath(e), formatValidationError(e))
	}
	return collector.Validate()
}

// fieldPath returns the namespaced field name without the root struct name.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		return ns[idx+1:]
	}
	return e.Field()
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "chainid":
		return "must be a 0x-prefixed hexadecimal chain id"
	case "eth_addr":
		return "must be a valid Ethereum address"
	case "numeric":
		return "must be numeric"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// toSnakeCase converts a field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32) // lowercase
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
