// Package mockprovider implements MockProvider, an in-memory stand-in for
// an EIP-1193 wallet provider intended for tests and development.
//
// MockProvider never talks to a network. Request always succeeds with a
// nil result (unless strict checking is enabled), and the Emit* methods
// fire provider events so that consumer code can be driven through
// connect, disconnect, chain and account changes deterministically. The
// legacy provider surface (send, sendAsync and the close, networkChanged
// and notification events) returns ProviderDeprecatedError.
//
// # Usage
//
//	p := mockprovider.New()
//	rec := mockprovider.NewRecorder()
//	if _, err := p.On(eip1193.EventConnect, rec); err != nil {
//	    t.Fatal(err)
//	}
//	p.EmitConnect(eip1193.ConnectInfo{ChainID: "0x1"})
//	// rec.Count() == 1
//	p.RemoveListener(eip1193.EventConnect, rec)
package mockprovider
