package singleton

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillsenselab/singlekit/logger"
	"github.com/skillsenselab/singlekit/teardown"
)

// Lazy defers construction to the first Instance call using
// double-checked locking: an atomic pointer load serves the common
// case without taking the mutex, and the mutex serializes the one-time
// construction among the callers that all saw nil.
//
// A constructor failure leaves the provider uninitialized; the failing
// caller gets the error and a later call retries construction.
//
// Lazy must not be copied after creation.
type Lazy[T any] struct {
	noCopy    noCopy
	name      string
	construct Constructor[T]
	recorder  Recorder

	mu       sync.Mutex
	instance atomic.Pointer[T]
	state    atomic.Int32
	guard    *teardown.Guard
}

// NewLazy creates the provider without running the constructor. The
// cleanup guard is registered up front and releases nothing if the
// instance is never constructed.
func NewLazy[T any](construct Constructor[T], opts ...Option) *Lazy[T] {
	s := newSettings[T](opts)
	l := &Lazy[T]{
		name:      s.name,
		construct: defaultConstructor(construct),
		recorder:  s.recorder,
	}
	l.guard = registerRelease(&s, func() *T {
		inst := l.instance.Swap(nil)
		if inst != nil {
			l.state.Store(int32(StateUninitialized))
		}
		return inst
	})
	return l
}

// Instance returns the shared instance, constructing it on the first
// call. Concurrent first callers block until the winner's construction
// completes; every later call is a single atomic load.
func (l *Lazy[T]) Instance() (*T, error) {
	// Fast path: the atomic load has acquire semantics, so a non-nil
	// pointer means a fully constructed instance.
	if inst := l.instance.Load(); inst != nil {
		return inst, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check under the lock: several callers can pass the nil check
	// above before any of them acquires the mutex.
	if inst := l.instance.Load(); inst != nil {
		return inst, nil
	}

	l.state.Store(int32(StateInitializing))
	start := time.Now()

	inst, err := l.construct()
	if err != nil {
		// Roll back so a later call can retry; the deferred unlock
		// releases the mutex on this path too.
		l.state.Store(int32(StateUninitialized))
		if l.recorder != nil {
			l.recorder.ObserveConstructionFailure(l.name)
		}
		logger.Debug("Lazy singleton construction failed", map[string]interface{}{
			logger.FieldProvider: l.name,
			logger.FieldError:    err.Error(),
		})
		return nil, newConstructionError(l.name, err)
	}

	// Publish before the state flip; the atomic store has release
	// semantics, so callers on the fast path never observe a partially
	// constructed instance.
	l.instance.Store(inst)
	l.state.Store(int32(StateReady))

	if l.recorder != nil {
		l.recorder.ObserveConstruction(l.name, time.Since(start))
	}
	logger.Debug("Lazy singleton constructed", map[string]interface{}{
		logger.FieldProvider: l.name,
		logger.FieldDuration: time.Since(start).Milliseconds(),
	})
	return inst, nil
}

// MustInstance is Instance but panics on construction failure.
func (l *Lazy[T]) MustInstance() *T {
	inst, err := l.Instance()
	if err != nil {
		panic(err)
	}
	return inst
}

// State reports the provider's construction state.
func (l *Lazy[T]) State() State {
	return State(l.state.Load())
}

// Name returns the provider name.
func (l *Lazy[T]) Name() string { return l.name }

// Constructed reports whether the instance currently exists.
func (l *Lazy[T]) Constructed() bool {
	return l.instance.Load() != nil
}

// Release releases the instance through the provider's teardown guard.
// It is idempotent and a no-op when the instance was never constructed;
// normally the teardown registry calls it.
func (l *Lazy[T]) Release(ctx context.Context) error {
	return l.guard.Release(ctx)
}
