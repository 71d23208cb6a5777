package emitter

import (
	"reflect"
	"sync"
)

// Listener receives the positional arguments of an emitted event.
type Listener interface {
	Handle(args ...any)
}

// FuncListener adapts a function to Listener. Its identity is the pointer,
// so two FuncListeners wrapping the same function are distinct listeners.
type FuncListener struct {
	fn func(args ...any)
}

// Func wraps fn as a Listener.
func Func(fn func(args ...any)) *FuncListener {
	return &FuncListener{fn: fn}
}

// Handle calls the wrapped function.
func (f *FuncListener) Handle(args ...any) {
	if f.fn != nil {
		f.fn(args...)
	}
}

// Emitter is the subscribe/unsubscribe/publish capability.
type Emitter[K comparable] interface {
	On(event K, listener Listener)
	Off(event K, listener Listener)
	Emit(event K, args ...any) bool
	ListenerCount(event K) int
	RemoveAll(event K)
}

// Registry is the default Emitter implementation.
type Registry[K comparable] struct {
	mu        sync.RWMutex
	listeners map[K][]Listener
}

// New creates an empty Registry.
func New[K comparable]() *Registry[K] {
	return &Registry[K]{
		listeners: make(map[K][]Listener),
	}
}

// On appends listener to the listeners of event.
func (r *Registry[K]) On(event K, listener Listener) {
	if listener == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners[event] = append(r.listeners[event], listener)
}

// Off removes the most recently added registration of listener for event.
// It is a no-op if listener is not registered.
func (r *Registry[K]) Off(event K, listener Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.listeners[event]
	for i := len(list) - 1; i >= 0; i-- {
		if sameListener(list[i], listener) {
			next := make([]Listener, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(r.listeners, event)
			} else {
				r.listeners[event] = next
			}
			return
		}
	}
}

// Emit synchronously invokes every listener registered for event at the
// time of the call, in registration order. It reports whether any
// listener was invoked.
func (r *Registry[K]) Emit(event K, args ...any) bool {
	r.mu.RLock()
	snapshot := r.listeners[event]
	r.mu.RUnlock()

	// On and Off never mutate a published slice in place, so the snapshot
	// is stable even if a listener subscribes or unsubscribes.
	for _, l := range snapshot {
		l.Handle(args...)
	}
	return len(snapshot) > 0
}

// ListenerCount returns the number of registrations for event.
func (r *Registry[K]) ListenerCount(event K) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners[event])
}

// RemoveAll drops every listener registered for event.
func (r *Registry[K]) RemoveAll(event K) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listeners, event)
}

// sameListener compares by identity. Listeners whose dynamic type is not
// comparable never match.
func sameListener(a, b Listener) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Ensure Registry implements Emitter.
var _ Emitter[string] = (*Registry[string])(nil)
