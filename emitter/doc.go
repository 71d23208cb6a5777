// Package emitter provides a synchronous, in-process event emitter.
//
// Listeners are registered per event key and invoked in registration order
// on the goroutine that calls Emit. The same listener may be registered
// more than once; Off removes one registration at a time, matched by
// identity (==). Wrap plain functions with Func to obtain a listener with a
// stable identity:
//
//	em := emitter.New[string]()
//	l := emitter.Func(func(args ...any) { fmt.Println(args...) })
//	em.On("chainChanged", l)
//	em.Emit("chainChanged", "0x5")
//	em.Off("chainChanged", l)
package emitter
