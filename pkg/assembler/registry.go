package assembler

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores assemblers by target name.
type Registry struct {
	mu         sync.RWMutex
	assemblers map[string]*Assembler
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		assemblers: make(map[string]*Assembler),
	}
}

// DefaultRegistry returns a registry holding the built-in android and ios
// targets.
func DefaultRegistry(opts ...Option) (*Registry, error) {
	registry := NewRegistry()
	for _, target := range []Target{Android(), IOS()} {
		assembler, err := New(target, opts...)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(assembler); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Register adds an assembler by its Name(). Duplicate names return an error.
func (r *Registry) Register(assembler *Assembler) error {
	if assembler == nil {
		return fmt.Errorf("assembler: assembler is required")
	}
	name := assembler.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assemblers[name]; exists {
		return fmt.Errorf("assembler: target %q already registered", name)
	}
	r.assemblers[name] = assembler
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(assembler *Assembler) {
	if err := r.Register(assembler); err != nil {
		panic(err)
	}
}

// Get retrieves an assembler by target name.
func (r *Registry) Get(name string) (*Assembler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assembler, ok := r.assemblers[name]
	if !ok {
		return nil, fmt.Errorf("assembler: target %q not found", name)
	}
	return assembler, nil
}

// List returns a sorted list of target names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.assemblers))
	for name := range r.assemblers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a target is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.assemblers[name]
	return ok
}
