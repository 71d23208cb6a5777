package errors

import (
	stderrors "errors"
)

// ErrorObject is the JSON-RPC 2.0 error member for a ProviderRpcError.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is a JSON-RPC 2.0 error response envelope.
type ErrorResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      any         `json:"id"`
	Error   ErrorObject `json:"error"`
}

// ToResponse converts a ProviderRpcError to a JSON-RPC error response for id.
func (e *ProviderRpcError) ToResponse(id any) ErrorResponse {
	return ErrorResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: ErrorObject{
			Code:    e.Code,
			Message: e.Message,
			Data:    e.Data,
		},
	}
}

// IsRpcError checks if an error is a ProviderRpcError.
func IsRpcError(err error) bool {
	var rpcErr *ProviderRpcError
	return stderrors.As(err, &rpcErr)
}

// AsRpcError converts an error to a ProviderRpcError if possible.
func AsRpcError(err error) (*ProviderRpcError, bool) {
	var rpcErr *ProviderRpcError
	if stderrors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}

// IsDeprecated checks if an error is a ProviderDeprecatedError.
func IsDeprecated(err error) bool {
	var depErr *ProviderDeprecatedError
	return stderrors.As(err, &depErr)
}

// AsDeprecated converts an error to a ProviderDeprecatedError if possible.
func AsDeprecated(err error) (*ProviderDeprecatedError, bool) {
	var depErr *ProviderDeprecatedError
	if stderrors.As(err, &depErr) {
		return depErr, true
	}
	return nil, false
}
