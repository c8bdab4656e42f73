// Package singleton provides process-wide single-instance providers:
// exactly one instance of a type, safely shared across concurrent
// callers and released at most once at teardown.
//
// Three interchangeable strategies implement the [Provider] contract:
//
//   - Eager: constructs the instance inside [NewEager], before any
//     concurrent caller can exist. Instance is a plain read.
//   - Lazy: defers construction to the first Instance call, guarded
//     by double-checked locking over a mutex. A failed construction
//     rolls back and a later call retries.
//   - Once: defers construction to the first Instance call using
//     sync.Once. No lock is managed here; the runtime arbitrates the
//     first-call race. A failed construction is latched.
//
// All providers register a cleanup guard with a [teardown.Registry]
// (the default one unless overridden), so instances are released in
// reverse construction order when the application calls
// teardown.Close.
//
// Providers contain locks and must not be copied after creation;
// go vet's copylocks check rejects copies.
//
// # Usage
//
//	var db = singleton.MustEager(openDatabase)
//
//	pool := singleton.NewLazy(newWorkerPool)
//	p, err := pool.Instance()
package singleton
