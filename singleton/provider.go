package singleton

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/singlekit/teardown"
)

// State describes where a provider is in its construction lifecycle.
type State int32

const (
	// StateUninitialized means no construction has succeeded yet.
	StateUninitialized State = iota
	// StateInitializing means exactly one caller is running the
	// constructor right now.
	StateInitializing
	// StateReady means the instance is constructed and published.
	StateReady
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Constructor creates the single instance of T. A nil Constructor means
// T is default-constructed with new(T).
type Constructor[T any] func() (*T, error)

// Provider hands out the process-wide instance of T. Implementations
// are safe for concurrent use; Instance either returns a pointer to a
// fully constructed T or an error, never a partially initialized value.
// The returned pointer is stable: every successful call returns the
// same one.
type Provider[T any] interface {
	// Instance returns the shared instance, constructing it first if
	// the strategy defers construction.
	Instance() (*T, error)

	// MustInstance is Instance but panics on construction failure.
	MustInstance() *T

	// State reports the provider's construction state.
	State() State

	// Name returns the provider name used in logs and metrics.
	Name() string
}

// Recorder receives lifecycle events from providers. Implementations
// must be safe for concurrent use. See the observability package for
// an OpenTelemetry-backed implementation.
type Recorder interface {
	// ObserveConstruction reports a successful construction and its duration.
	ObserveConstruction(provider string, d time.Duration)
	// ObserveConstructionFailure reports a failed construction attempt.
	ObserveConstructionFailure(provider string)
	// ObserveRelease reports that the instance was released at teardown.
	ObserveRelease(provider string)
}

var (
	_ Provider[struct{}] = (*Eager[struct{}])(nil)
	_ Provider[struct{}] = (*Lazy[struct{}])(nil)
	_ Provider[struct{}] = (*Once[struct{}])(nil)
)

// noCopy triggers go vet's copylocks check when a struct embedding it
// is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// settings holds construction-time provider configuration.
type settings struct {
	name     string
	recorder Recorder
	registry *teardown.Registry
	detached bool
}

// Option configures a provider at creation time.
type Option func(*settings)

// WithName sets the provider name used in logs, metrics, and the
// teardown guard. Defaults to the instance type name.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithRecorder attaches a lifecycle metrics recorder to the provider.
func WithRecorder(r Recorder) Option {
	return func(s *settings) { s.recorder = r }
}

// WithRegistry registers the provider's cleanup guard with the given
// registry instead of teardown.Default.
func WithRegistry(reg *teardown.Registry) Option {
	return func(s *settings) { s.registry = reg }
}

// WithoutTeardown skips teardown registration entirely. The caller
// owns the instance's release.
func WithoutTeardown() Option {
	return func(s *settings) { s.detached = true }
}

func newSettings[T any](opts []Option) settings {
	s := settings{
		name:     typeName[T](),
		registry: teardown.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// guardName makes teardown guard names unique across providers that
// share an instance type.
func (s *settings) guardName() string {
	return fmt.Sprintf("singleton/%s/%s", s.name, uuid.NewString()[:8])
}

func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}

// defaultConstructor returns construct, or a new(T) constructor when
// construct is nil.
func defaultConstructor[T any](construct Constructor[T]) Constructor[T] {
	if construct != nil {
		return construct
	}
	return func() (*T, error) { return new(T), nil }
}

// registerRelease creates the provider's cleanup guard and registers it
// for teardown unless the provider is detached. take hands over the
// instance and clears the provider's reference to it; when the instance
// was never constructed, take returns nil and the release is a no-op.
func registerRelease[T any](s *settings, take func() *T) *teardown.Guard {
	recorder := s.recorder
	name := s.name
	g := teardown.NewGuard(s.guardName(), func(ctx context.Context) error {
		inst := take()
		if inst == nil {
			return nil
		}
		if recorder != nil {
			recorder.ObserveRelease(name)
		}
		return closeInstance(name, inst)
	})
	if !s.detached && s.registry != nil {
		s.registry.Register(g)
	}
	return g
}
