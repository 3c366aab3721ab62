package introspect

import (
	"fmt"
	"sort"
	"sync"

	"github.com/traitkit/traitkit/props"
)

// Registry holds named classes for lookup by tooling and tests.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Global registry instance used by the package-level functions.
var globalRegistry = NewRegistry()

// Add registers a class under its name. Registering a second class with
// the same name is an error.
func (r *Registry) Add(c *Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.classes[c.name]; exists {
		return fmt.Errorf("class already registered: %s", c.name)
	}
	r.classes[c.name] = c
	return nil
}

// Lookup finds a class by name.
func (r *Registry) Lookup(name string) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.classes[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("class not found: %s", name)
}

// Names returns the registered class names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Classes returns the registered classes sorted by name.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].name < result[j].name })
	return result
}

// Reset clears the registry (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = make(map[string]*Class)
}

// Register adds a class to the global registry.
func Register(c *Class) error { return globalRegistry.Add(c) }

// Lookup finds a class in the global registry.
func Lookup(name string) (*Class, error) { return globalRegistry.Lookup(name) }

// Classes returns the classes of the global registry sorted by name.
func Classes() []*Class { return globalRegistry.Classes() }

// ClassNames returns the names of the global registry in sorted order.
func ClassNames() []string { return globalRegistry.Names() }

// Reset clears the global registry and restores the built-in root class
// to its pristine state (used for testing).
func Reset() {
	globalRegistry.Reset()
	base.statics = props.Map{}
	base.methods = props.Map{}
	base.template = props.Map{}
}
