package teardown

import (
	"context"
	"sync"
	"sync/atomic"
)

// ReleaseFunc frees a guarded resource. It receives the context passed
// to Release so implementations can honor shutdown deadlines.
type ReleaseFunc func(ctx context.Context) error

// Guard runs a release function at most once. Calling Release again
// after the first call is a no-op, which makes double-release a
// structural impossibility rather than a runtime error. A Guard with a
// nil release function is valid and does nothing.
type Guard struct {
	name     string
	release  ReleaseFunc
	once     sync.Once
	released atomic.Bool
	err      error
}

// NewGuard creates a guard for the named resource.
func NewGuard(name string, release ReleaseFunc) *Guard {
	return &Guard{name: name, release: release}
}

// Name returns the resource name the guard was created with.
func (g *Guard) Name() string { return g.name }

// Release runs the guarded release function if it has not run yet and
// returns its error. Subsequent calls return the error from the first
// run without invoking the function again.
func (g *Guard) Release(ctx context.Context) error {
	g.once.Do(func() {
		if g.release != nil {
			g.err = g.release(ctx)
		}
		g.released.Store(true)
	})
	return g.err
}

// Released reports whether the release function has already run.
func (g *Guard) Released() bool {
	return g.released.Load()
}
