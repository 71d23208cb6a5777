// Package validation provides input validation for provider configuration
// and request arguments.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Failures are reported as
// ProviderRpcError values with the JSON-RPC invalid-params code and the
// offending fields in Data.
//
// # Struct Tag Validation
//
//	type State struct {
//	    ChainID  string   `validate:"required,chainid"`
//	    Accounts []string `validate:"dive,eth_addr"`
//	}
//	err := validation.Validate(state)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("method", args.Method)
//	err := v.Validate()
package validation
