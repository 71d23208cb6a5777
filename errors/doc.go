// Package errors provides the error types a wallet provider reports.
// It implements ProviderRpcError (numeric EIP-1193 / JSON-RPC codes with
// optional data) and ProviderDeprecatedError for legacy provider surfaces.
package errors
