package singleton

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/skillsenselab/singlekit/teardown"
)

// counter increments a shared construction counter when built, so tests
// can assert construction happened exactly once.
type counter struct {
	value int
}

func countingConstructor(constructions *atomic.Int32) Constructor[counter] {
	return func() (*counter, error) {
		constructions.Add(1)
		return &counter{value: 1}, nil
	}
}

// resource counts Close calls through its pointer receiver, which makes
// *resource an io.Closer for the teardown path.
type resource struct {
	closes *atomic.Int32
}

func (r *resource) Close() error {
	r.closes.Add(1)
	return nil
}

func failingConstructor(attempts *atomic.Int32) Constructor[counter] {
	return func() (*counter, error) {
		attempts.Add(1)
		return nil, fmt.Errorf("boom")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUninitialized, "uninitialized"},
		{StateInitializing, "initializing"},
		{StateReady, "ready"},
		{State(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}

func TestDefaultProviderName(t *testing.T) {
	l := NewLazy[counter](nil, WithoutTeardown())
	if l.Name() != "singleton.counter" {
		t.Errorf("expected default name 'singleton.counter', got %q", l.Name())
	}
}

func TestWithName(t *testing.T) {
	l := NewLazy[counter](nil, WithName("db"), WithoutTeardown())
	if l.Name() != "db" {
		t.Errorf("expected name 'db', got %q", l.Name())
	}
}

func TestNilConstructorDefaults(t *testing.T) {
	l := NewLazy[counter](nil, WithoutTeardown())
	inst, err := l.Instance()
	if err != nil {
		t.Fatalf("Instance failed: %v", err)
	}
	if inst == nil {
		t.Fatal("expected default-constructed instance")
	}
	if inst.value != 0 {
		t.Errorf("expected zero value, got %d", inst.value)
	}
}

func TestConstructionErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("no disk")
	err := newConstructionError("db", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	var ce *ConstructionError
	if !errors.As(error(err), &ce) {
		t.Fatal("expected errors.As to match ConstructionError")
	}
	if ce.Provider != "db" {
		t.Errorf("expected provider 'db', got %q", ce.Provider)
	}
}

func TestWithRegistry(t *testing.T) {
	reg := teardown.NewRegistry()
	NewLazy[counter](nil, WithRegistry(reg))
	if reg.Len() != 1 {
		t.Errorf("expected 1 guard in registry, got %d", reg.Len())
	}
}

func TestWithoutTeardown(t *testing.T) {
	reg := teardown.NewRegistry()
	NewLazy[counter](nil, WithRegistry(reg), WithoutTeardown())
	if reg.Len() != 0 {
		t.Errorf("expected no guards in registry, got %d", reg.Len())
	}
}
