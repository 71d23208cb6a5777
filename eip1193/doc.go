// Package eip1193 defines the payload types and event taxonomy of the
// Ethereum Provider JavaScript API (EIP-1193) as Go types.
//
// A provider exposes one request method and a fixed set of named events.
// Each event carries a fixed payload shape:
//
//	connect         ConnectInfo
//	disconnect      *errors.ProviderRpcError
//	chainChanged    string
//	accountsChanged []string
//	message         Message (ProviderMessage or EthSubscription)
//
// The legacy events close, networkChanged and notification are part of the
// taxonomy only so that subscribing to them can fail with a pointer to
// their replacement.
//
// See https://eips.ethereum.org/EIPS/eip-1193.
package eip1193
