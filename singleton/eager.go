package singleton

import (
	"context"
	"io"
	"time"

	"github.com/skillsenselab/singlekit/logger"
	"github.com/skillsenselab/singlekit/teardown"
)

// Eager constructs the instance inside NewEager, so by the time any
// caller holds the provider the instance already exists. Instance is a
// plain pointer read with no synchronization.
//
// Create Eager providers in package variable initializers to get the
// "constructed before main, before any goroutine" guarantee:
//
//	var cache = singleton.MustEager(newCache)
//
// Eager must not be copied after creation.
type Eager[T any] struct {
	noCopy   noCopy
	name     string
	instance *T
	guard    *teardown.Guard
}

// NewEager runs the constructor immediately and returns the provider.
// A constructor failure here means the process has no usable instance;
// callers creating the provider at package init time should prefer
// MustEager, since no caller exists yet to handle the error.
func NewEager[T any](construct Constructor[T], opts ...Option) (*Eager[T], error) {
	s := newSettings[T](opts)
	construct = defaultConstructor(construct)

	start := time.Now()
	inst, err := construct()
	if err != nil {
		if s.recorder != nil {
			s.recorder.ObserveConstructionFailure(s.name)
		}
		return nil, newConstructionError(s.name, err)
	}

	e := &Eager[T]{name: s.name, instance: inst}
	e.guard = registerRelease(&s, func() *T {
		inst := e.instance
		e.instance = nil
		return inst
	})

	if s.recorder != nil {
		s.recorder.ObserveConstruction(s.name, time.Since(start))
	}
	logger.Debug("Eager singleton constructed", map[string]interface{}{
		logger.FieldProvider: s.name,
		logger.FieldDuration: time.Since(start).Milliseconds(),
	})
	return e, nil
}

// MustEager is NewEager but panics on construction failure. Use it for
// package variable initialization, where a failure is fatal to the
// process by definition.
func MustEager[T any](construct Constructor[T], opts ...Option) *Eager[T] {
	e, err := NewEager(construct, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Instance returns the shared instance. It never fails and never
// blocks.
func (e *Eager[T]) Instance() (*T, error) {
	return e.instance, nil
}

// MustInstance returns the shared instance.
func (e *Eager[T]) MustInstance() *T {
	return e.instance
}

// State always reports StateReady: construction finished before the
// provider was handed out.
func (e *Eager[T]) State() State {
	return StateReady
}

// Name returns the provider name.
func (e *Eager[T]) Name() string { return e.name }

// Release releases the instance through the provider's teardown guard.
// It is idempotent; normally the teardown registry calls it.
func (e *Eager[T]) Release(ctx context.Context) error {
	return e.guard.Release(ctx)
}

// closeInstance closes the instance when it implements io.Closer.
func closeInstance[T any](provider string, inst *T) error {
	if inst == nil {
		return nil
	}
	logger.Debug("Singleton released", map[string]interface{}{
		logger.FieldProvider: provider,
	})
	if closer, ok := any(inst).(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
