// internal/domain/cart/registry.go
package cart

import "sync"

// Registry maps guest session ids to their carts. Carts live in
// process memory only and disappear on restart.
type Registry struct {
	mu    sync.RWMutex
	carts map[string]*Store
}

// NewRegistry constructs an empty registry
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Store)}
}

// Get returns the cart for the session if one exists
func (r *Registry) Get(sessionID string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.carts[sessionID]
	return s, ok
}

// GetOrCreate returns the cart for the session, creating it on first use
func (r *Registry) GetOrCreate(sessionID string) *Store {
	r.mu.RLock()
	s, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.carts[sessionID]; ok {
		return s
	}
	s = NewStore()
	r.carts[sessionID] = s
	return s
}

// Remove drops the cart for the session
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}

// Len returns the number of live carts
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.carts)
}
