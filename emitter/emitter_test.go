package emitter

import (
	"sync"
	"testing"
)

type recording struct {
	calls [][]any
}

func (r *recording) Handle(args ...any) {
	r.calls = append(r.calls, args)
}

// sliceListener has a non-comparable dynamic type.
type sliceListener []int

func (sliceListener) Handle(args ...any) {}

func TestRegistry_EmitDeliversArgs(t *testing.T) {
	em := New[string]()
	rec := &recording{}
	em.On("chainChanged", rec)

	if !em.Emit("chainChanged", "0x5") {
		t.Error("expected Emit to report a delivery")
	}
	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(rec.calls))
	}
	if len(rec.calls[0]) != 1 || rec.calls[0][0] != "0x5" {
		t.Errorf("unexpected args %v", rec.calls[0])
	}
}

func TestRegistry_EmitWithoutListeners(t *testing.T) {
	em := New[string]()
	if em.Emit("connect") {
		t.Error("expected Emit to report no delivery")
	}
}

func TestRegistry_RegistrationOrder(t *testing.T) {
	em := New[string]()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		em.On("message", Func(func(args ...any) { order = append(order, i) }))
	}

	em.Emit("message")
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("expected [0 1 2], got %v", order)
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	em := New[string]()
	count := 0
	l := Func(func(args ...any) { count++ })

	em.On("connect", l)
	em.On("connect", l)
	em.Emit("connect")
	if count != 2 {
		t.Fatalf("expected 2 calls for duplicate registration, got %d", count)
	}

	em.Off("connect", l)
	if em.ListenerCount("connect") != 1 {
		t.Fatalf("expected Off to remove one registration, got %d", em.ListenerCount("connect"))
	}
	em.Emit("connect")
	if count != 3 {
		t.Errorf("expected 3 calls after removing one registration, got %d", count)
	}
}

func TestRegistry_OffByIdentity(t *testing.T) {
	em := New[string]()
	var a, b int
	la := Func(func(args ...any) { a++ })
	lb := Func(func(args ...any) { b++ })
	em.On("connect", la)
	em.On("connect", lb)

	em.Off("connect", la)
	em.Emit("connect")
	if a != 0 || b != 1 {
		t.Errorf("expected only lb to fire, got a=%d b=%d", a, b)
	}

	// Same function, different wrapper: not the same listener.
	fn := func(args ...any) {}
	em.On("x", Func(fn))
	em.Off("x", Func(fn))
	if em.ListenerCount("x") != 1 {
		t.Error("expected distinct FuncListeners not to match")
	}
}

func TestRegistry_OffUnknownIsNoop(t *testing.T) {
	em := New[string]()
	em.Off("connect", &recording{})
	em.Off("connect", nil)
	em.On("connect", nil)
	if em.ListenerCount("connect") != 0 {
		t.Error("expected no listeners")
	}
}

func TestRegistry_NonComparableListener(t *testing.T) {
	em := New[string]()
	l := sliceListener{1}
	em.On("connect", l)
	// Must not panic; non-comparable listeners can never be matched.
	em.Off("connect", l)
	if em.ListenerCount("connect") != 1 {
		t.Errorf("expected listener to remain, got %d", em.ListenerCount("connect"))
	}
	em.RemoveAll("connect")
	if em.ListenerCount("connect") != 0 {
		t.Error("expected RemoveAll to clear listeners")
	}
}

func TestRegistry_UnsubscribeDuringEmit(t *testing.T) {
	em := New[string]()
	var second int
	var first *FuncListener
	secondL := Func(func(args ...any) { second++ })
	first = Func(func(args ...any) {
		em.Off("message", first)
		em.Off("message", secondL)
	})
	em.On("message", first)
	em.On("message", secondL)

	em.Emit("message")
	if second != 1 {
		t.Errorf("expected snapshot delivery to reach the second listener, got %d", second)
	}
	if em.ListenerCount("message") != 0 {
		t.Errorf("expected both listeners removed, got %d", em.ListenerCount("message"))
	}
	em.Emit("message")
	if second != 1 {
		t.Errorf("expected no delivery after removal, got %d", second)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	em := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l := Func(func(args ...any) {})
			em.On(i%3, l)
			em.Emit(i % 3)
			em.Off(i%3, l)
		}(i)
	}
	wg.Wait()
	for k := 0; k < 3; k++ {
		if em.ListenerCount(k) != 0 {
			t.Errorf("expected no listeners for %d, got %d", k, em.ListenerCount(k))
		}
	}
}

func TestFuncListener_NilFunc(t *testing.T) {
	// Should not panic
	Func(nil).Handle("x")
}
