package singleton

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillsenselab/singlekit/logger"
	"github.com/skillsenselab/singlekit/teardown"
)

// Once defers construction to the first Instance call using sync.Once:
// the runtime arbitrates the first-call race, the winner constructs,
// losers block until construction completes, and everyone gets the same
// pointer. No lock is managed by this package.
//
// This is the preferred lazy strategy. Its one limitation, inherited
// from sync.Once, is that a failed construction is latched: the
// constructor runs exactly one time, so after a failure every later
// call returns that same error. Use [Lazy] when construction must be
// retryable.
//
// Once must not be copied after creation.
type Once[T any] struct {
	noCopy    noCopy
	name      string
	construct Constructor[T]
	recorder  Recorder

	once     sync.Once
	instance atomic.Pointer[T]
	err      error
	state    atomic.Int32
	guard    *teardown.Guard
}

// NewOnce creates the provider without running the constructor. The
// cleanup guard is registered up front and releases nothing if the
// instance is never constructed.
func NewOnce[T any](construct Constructor[T], opts ...Option) *Once[T] {
	s := newSettings[T](opts)
	o := &Once[T]{
		name:      s.name,
		construct: defaultConstructor(construct),
		recorder:  s.recorder,
	}
	o.guard = registerRelease(&s, func() *T {
		inst := o.instance.Swap(nil)
		if inst != nil {
			o.state.Store(int32(StateUninitialized))
		}
		return inst
	})
	return o
}

// Instance returns the shared instance, constructing it on the first
// call. Concurrent first callers block until the winner's construction
// completes.
func (o *Once[T]) Instance() (*T, error) {
	o.once.Do(func() {
		o.state.Store(int32(StateInitializing))
		start := time.Now()

		inst, err := o.construct()
		if err != nil {
			o.err = newConstructionError(o.name, err)
			o.state.Store(int32(StateUninitialized))
			if o.recorder != nil {
				o.recorder.ObserveConstructionFailure(o.name)
			}
			logger.Debug("Once singleton construction failed", map[string]interface{}{
				logger.FieldProvider: o.name,
				logger.FieldError:    err.Error(),
			})
			return
		}

		o.instance.Store(inst)
		o.state.Store(int32(StateReady))

		if o.recorder != nil {
			o.recorder.ObserveConstruction(o.name, time.Since(start))
		}
		logger.Debug("Once singleton constructed", map[string]interface{}{
			logger.FieldProvider: o.name,
			logger.FieldDuration: time.Since(start).Milliseconds(),
		})
	})
	if o.err != nil {
		return nil, o.err
	}
	return o.instance.Load(), nil
}

// MustInstance is Instance but panics on construction failure.
func (o *Once[T]) MustInstance() *T {
	inst, err := o.Instance()
	if err != nil {
		panic(err)
	}
	return inst
}

// State reports the provider's construction state.
func (o *Once[T]) State() State {
	return State(o.state.Load())
}

// Name returns the provider name.
func (o *Once[T]) Name() string { return o.name }

// Release releases the instance through the provider's teardown guard.
// It is idempotent and a no-op when the instance was never constructed;
// normally the teardown registry calls it.
func (o *Once[T]) Release(ctx context.Context) error {
	return o.guard.Release(ctx)
}
