package errors

// Provider error codes defined by EIP-1193.
const (
	// CodeUserRejected indicates the user rejected the request.
	CodeUserRejected = 4001
	// CodeUnauthorized indicates the requested method and/or account has not been authorized.
	CodeUnauthorized = 4100
	// CodeUnsupportedMethod indicates the provider does not support the requested method.
	CodeUnsupportedMethod = 4200
	// CodeDisconnected indicates the provider is disconnected from all chains.
	CodeDisconnected = 4900
	// CodeChainDisconnected indicates the provider is not connected to the requested chain.
	CodeChainDisconnected = 4901
)

// JSON-RPC 2.0 error codes, which providers may also surface.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

var codeText = map[int]string{
	CodeUserRejected:      "User Rejected Request",
	CodeUnauthorized:      "Unauthorized",
	CodeUnsupportedMethod: "Unsupported Method",
	CodeDisconnected:      "Disconnected",
	CodeChainDisconnected: "Chain Disconnected",
	CodeParseError:        "Parse error",
	CodeInvalidRequest:    "Invalid Request",
	CodeMethodNotFound:    "Method not found",
	CodeInvalidParams:     "Invalid params",
	CodeInternalError:     "Internal error",
}

// CodeText returns the standard description of a provider error code,
// or an empty string if the code is not a known one.
func CodeText(code int) string {
	return codeText[code]
}

// IsProviderCode reports whether code lies in the EIP-1193 provider range.
func IsProviderCode(code int) bool {
	return code >= 4000 && code <= 4999
}
