package secret

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ProviderFactory creates a Provider from configuration.
type ProviderFactory func(cfg map[string]any) (Provider, error)

// Registry maps markers to provider factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ProviderFactory)}
}

// Register adds a factory under marker.
func (r *Registry) Register(marker string, factory ProviderFactory) error {
	if err := ValidateMarker(marker); err != nil {
		return err
	}
	if factory == nil {
		return errors.New("secret: nil provider factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[marker]; exists {
		return fmt.Errorf("secret provider %q already registered", marker)
	}
	r.factories[marker] = factory
	return nil
}

// Create instantiates the provider registered under marker.
func (r *Registry) Create(marker string, cfg map[string]any) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[marker]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("secret provider %q is not registered", marker)
	}

	p, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("create secret provider %q: %w", marker, err)
	}
	if p.Name() != marker {
		_ = p.Close()
		return nil, fmt.Errorf("secret provider %q reports name %q", marker, p.Name())
	}
	return p, nil
}

// NewResolver creates every registered provider and returns a Resolver
// serving them. cfgs is keyed by marker; a missing entry passes nil.
func (r *Registry) NewResolver(cfgs map[string]map[string]any) (*Resolver, error) {
	res := NewResolver()
	for _, marker := range r.List() {
		p, err := r.Create(marker, cfgs[marker])
		if err != nil {
			_ = res.Close()
			return nil, err
		}
		res.Register(p)
	}
	return res, nil
}

// List returns registered markers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
