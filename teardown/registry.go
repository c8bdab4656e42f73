package teardown

import (
	"context"
	"fmt"
	"sync"

	"github.com/skillsenselab/singlekit/logger"
)

// Registry collects guards and releases them in reverse registration
// order. Register dependencies first so they are released last.
type Registry struct {
	guards []*Guard
	mu     sync.Mutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a guard to the registry. The same guard may be
// registered with several registries; its release still runs only once.
func (r *Registry) Register(g *Guard) {
	if g == nil {
		return
	}
	r.mu.Lock()
	r.guards = append(r.guards, g)
	r.mu.Unlock()

	logger.Debug("Teardown guard registered", map[string]interface{}{
		"guard": g.Name(),
	})
}

// Add creates a guard for the named resource, registers it, and
// returns it.
func (r *Registry) Add(name string, release ReleaseFunc) *Guard {
	g := NewGuard(name, release)
	r.Register(g)
	return g
}

// Len returns the number of registered guards.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.guards)
}

// Close releases all registered guards in reverse registration order.
// Every guard is attempted even when earlier ones fail; release errors
// are collected and reported together. Calling Close again only touches
// guards registered since the previous call, and re-releasing a guard
// is a no-op.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	guards := make([]*Guard, len(r.guards))
	copy(guards, r.guards)
	r.mu.Unlock()

	var errs []error
	for i := len(guards) - 1; i >= 0; i-- {
		g := guards[i]
		if g.Released() {
			continue
		}

		logger.Debug("Releasing guard", map[string]interface{}{
			"guard": g.Name(),
		})
		if err := g.Release(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to release %s: %w", g.Name(), err))
			logger.Error("Guard release failed", map[string]interface{}{
				"guard": g.Name(),
				"error": err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("teardown errors: %v", errs)
	}
	return nil
}

// --- Default registry ---

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by package-level
// Register, Add, and Close.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a guard to the default registry.
func Register(g *Guard) {
	defaultRegistry.Register(g)
}

// Add creates and registers a guard with the default registry.
func Add(name string, release ReleaseFunc) *Guard {
	return defaultRegistry.Add(name, release)
}

// Close releases all guards in the default registry in reverse
// registration order. Call it once at the end of main.
func Close(ctx context.Context) error {
	return defaultRegistry.Close(ctx)
}
