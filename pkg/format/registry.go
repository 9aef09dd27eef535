package format

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// CheckFunc reports whether a string satisfies a syntactic format.
// A nil return means the value matches.
type CheckFunc func(value string) error

// Registry manages the available format checks.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		checks: make(map[string]CheckFunc),
	}
}

// Register adds a format check to the registry.
// If a check with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = fn
}

// Has reports whether a check is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.checks[name]
	return ok
}

// Validate looks up a format by name and runs it against value.
// Returns an error if the format is not registered or the value fails it.
func (r *Registry) Validate(name, value string) error {
	r.mu.RLock()
	fn, ok := r.checks[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("format not found: %s", name)
	}
	return fn(value)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry, preloaded with the built-in formats
// (email, url, uuid, hostname). Checks are backed by go-playground/validator.
// Registering on it makes a format visible to every schema that uses the
// default registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		v := validator.New(validator.WithRequiredStructEnabled())
		for _, tag := range []string{"email", "url", "uuid", "hostname"} {
			defaultReg.Register(tag, varCheck(v, tag))
		}
	})
	return defaultReg
}

// varCheck adapts a go-playground/validator tag into a CheckFunc.
func varCheck(v *validator.Validate, tag string) CheckFunc {
	return func(value string) error {
		if err := v.Var(value, tag); err != nil {
			return fmt.Errorf("value is not a valid %s", tag)
		}
		return nil
	}
}
