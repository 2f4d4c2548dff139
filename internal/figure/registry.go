package figure

import "fmt"

// Registry holds figure builders in registration order. It is populated once
// at startup and read-only afterwards.
type Registry struct {
	byName  map[string]Builder
	ordered []Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Builder)}
}

// Register adds a builder. Registering two builders under the same name is
// a wiring bug and returns an error.
func (r *Registry) Register(b Builder) error {
	name := b.Info().Name
	if name == "" {
		return fmt.Errorf("register figure: empty name")
	}
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("register figure %q: already registered", name)
	}
	r.byName[name] = b
	r.ordered = append(r.ordered, b)
	return nil
}

// Lookup returns the builder registered under name.
func (r *Registry) Lookup(name string) (Builder, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// All returns the builders in registration order.
func (r *Registry) All() []Builder {
	out := make([]Builder, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.ordered))
	for i, b := range r.ordered {
		names[i] = b.Info().Name
	}
	return names
}
