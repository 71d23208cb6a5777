package mockprovider

import (
	"sync"

	"github.com/kbukum/walletmock/eip1193"
	"github.com/kbukum/walletmock/emitter"
	"github.com/kbukum/walletmock/errors"
)

// Typed listener adapters. Each returns a listener with a stable identity,
// so the value passed to On can later be passed to RemoveListener.
// Payloads of an unexpected type are ignored.

// ConnectListener adapts fn to the connect event.
func ConnectListener(fn func(info eip1193.ConnectInfo)) *emitter.FuncListener {
	return emitter.Func(func(args ...any) {
		if info, ok := first[eip1193.ConnectInfo](args); ok {
			fn(info)
		}
	})
}

// DisconnectListener adapts fn to the disconnect event.
func DisconnectListener(fn func(err *errors.ProviderRpcError)) *emitter.FuncListener {
	return emitter.Func(func(args ...any) {
		if err, ok := first[*errors.ProviderRpcError](args); ok {
			fn(err)
		}
	})
}

// ChainChangedListener adapts fn to the chainChanged event.
func ChainChangedListener(fn func(chainID string)) *emitter.FuncListener {
	return emitter.Func(func(args ...any) {
		if chainID, ok := first[string](args); ok {
			fn(chainID)
		}
	})
}

// AccountsChangedListener adapts fn to the accountsChanged event.
func AccountsChangedListener(fn func(accounts []string)) *emitter.FuncListener {
	return emitter.Func(func(args ...any) {
		if accounts, ok := first[[]string](args); ok {
			fn(accounts)
		}
	})
}

// MessageListener adapts fn to the message event. A nil message is
// passed through as nil.
func MessageListener(fn func(msg eip1193.Message)) *emitter.FuncListener {
	return emitter.Func(func(args ...any) {
		if len(args) > 0 && args[0] == nil {
			fn(nil)
			return
		}
		if msg, ok := first[eip1193.Message](args); ok {
			fn(msg)
		}
	})
}

func first[T any](args []any) (T, bool) {
	var zero T
	if len(args) == 0 {
		return zero, false
	}
	v, ok := args[0].(T)
	return v, ok
}

// Recorder is a listener that records the arguments of every call.
type Recorder struct {
	mu    sync.Mutex
	calls [][]any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handle records args.
func (r *Recorder) Handle(args ...any) {
	c := make([]any, len(args))
	copy(c, args)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns the recorded argument lists in call order.
func (r *Recorder) Calls() [][]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]any, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns the number of recorded calls.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the arguments of the most recent call, or nil.
func (r *Recorder) Last() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
