package split

import (
	"fmt"
	"sync"
)

// Registry manages splitter instances by name.
type Registry struct {
	splitters map[string]Splitter
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in splitters registered.
func NewRegistry() *Registry {
	r := &Registry{
		splitters: make(map[string]Splitter),
	}
	r.splitters["whitespace"] = NewWhitespace()
	r.splitters["markup"] = NewMarkup()
	return r
}

// Get returns the splitter registered under the given name.
func (r *Registry) Get(name string) (Splitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.splitters[name]
	if !ok {
		return nil, fmt.Errorf("unknown splitter: %q", name)
	}
	return s, nil
}

// Register adds a custom splitter to the registry.
func (r *Registry) Register(name string, s Splitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.splitters[name]; exists {
		return fmt.Errorf("splitter already registered: %q", name)
	}
	r.splitters[name] = s
	return nil
}

// Names returns the names of all registered splitters.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.splitters))
	for name := range r.splitters {
		names = append(names, name)
	}
	return names
}
