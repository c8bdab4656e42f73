package singleton

import "fmt"

// ConstructionError reports a failed singleton construction. The lazy
// strategies return it from Instance; MustInstance and MustEager panic
// with it.
type ConstructionError struct {
	// Provider is the name of the provider whose constructor failed.
	Provider string
	// Cause is the error returned by the constructor.
	Cause error
}

// Error returns the string representation of the error.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("singleton %s: construction failed: %v", e.Provider, e.Cause)
}

// Unwrap returns the constructor error.
func (e *ConstructionError) Unwrap() error { return e.Cause }

func newConstructionError(provider string, cause error) *ConstructionError {
	return &ConstructionError{Provider: provider, Cause: cause}
}
