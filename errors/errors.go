package errors

import (
	"fmt"
)

// ProviderRpcError is a structured provider failure.
// It is raised by strict requests and carried as the disconnect payload.
type ProviderRpcError struct {
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Code is the numeric EIP-1193 or JSON-RPC error code.
	Code int `json:"code"`
	// Data contains optional extra information about the failure.
	Data any `json:"data,omitempty"`
}

// Error returns the string representation of the error.
func (e *ProviderRpcError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("provider rpc error %d: %s (data: %v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("provider rpc error %d: %s", e.Code, e.Message)
}

// WithData sets the optional data and returns the receiver.
func (e *ProviderRpcError) WithData(data any) *ProviderRpcError {
	e.Data = data
	return e
}

// NewRpcError creates a ProviderRpcError. An empty message falls back to
// the standard text for the code.
func NewRpcError(code int, message string) *ProviderRpcError {
	if message == "" {
		message = CodeText(code)
	}
	return &ProviderRpcError{Code: code, Message: message}
}

// --- EIP-1193 Error Constructors ---

// UserRejected creates a ProviderRpcError for a request the user declined.
func UserRejected() *ProviderRpcError {
	return NewRpcError(CodeUserRejected, "The user rejected the request.")
}

// Unauthorized creates a ProviderRpcError for an unauthorized method or account.
func Unauthorized() *ProviderRpcError {
	return NewRpcError(CodeUnauthorized, "The requested method and/or account has not been authorized by the user.")
}

// UnsupportedMethod creates a ProviderRpcError for a method the provider does not support.
func UnsupportedMethod(method string) *ProviderRpcError {
	return NewRpcError(CodeUnsupportedMethod, fmt.Sprintf("The Provider does not support the requested method %q.", method)).
		WithData(map[string]any{"method": method})
}

// Disconnected creates a ProviderRpcError for a provider disconnected from all chains.
func Disconnected() *ProviderRpcError {
	return NewRpcError(CodeDisconnected, "The Provider is disconnected from all chains.")
}

// ChainDisconnected creates a ProviderRpcError for a request aimed at a chain
// the provider is not connected to.
func ChainDisconnected(requested, connected string) *ProviderRpcError {
	return NewRpcError(CodeChainDisconnected, "The Provider is not connected to the requested chain.").
		WithData(map[string]any{"requested": requested, "connected": connected})
}

// ProviderDeprecatedError signals use of a provider feature kept only so
// that callers get an informative failure pointing at its replacement.
type ProviderDeprecatedError struct {
	Message string `json:"message"`
}

// Error returns the deprecation message.
func (e *ProviderDeprecatedError) Error() string {
	return e.Message
}

// Deprecated creates a ProviderDeprecatedError with the given message.
func Deprecated(message string) *ProviderDeprecatedError {
	return &ProviderDeprecatedError{Message: message}
}

// DeprecatedEvent creates the error returned when subscribing to a legacy event.
func DeprecatedEvent(event, replacement string) *ProviderDeprecatedError {
	return Deprecated(fmt.Sprintf("Event %s is deprecated. Use `%s` instead.", event, replacement))
}

// DeprecatedEmit creates the error returned when emitting a legacy event.
func DeprecatedEmit(event, replacement string) *ProviderDeprecatedError {
	return Deprecated(fmt.Sprintf("`%s` event is deprecated. Use `%s` instead.", event, replacement))
}

// SupersededByRequest creates the error returned by the legacy send methods.
func SupersededByRequest() *ProviderDeprecatedError {
	return Deprecated("This method is superseded by `request`")
}
