package lookup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/soterkit/soter/pkg/validator"
)

// Router dispatches each kind to the Lookup registered for it. Resolving
// an unregistered kind fails with ErrUnknownKind, which also matches
// validator.ErrUnknownKind: Object rules treat it as a configuration error
// rather than a missing object.
type Router struct {
	mu       sync.RWMutex
	backends map[string]validator.Lookup
	fallback validator.Lookup
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{backends: make(map[string]validator.Lookup)}
}

// Handle registers l for the given kinds, replacing earlier registrations.
func (r *Router) Handle(l validator.Lookup, kinds ...string) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kind := range kinds {
		r.backends[kind] = l
	}
	return r
}

// Fallback sets the Lookup used for kinds without a registration.
func (r *Router) Fallback(l validator.Lookup) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = l
	return r
}

func (r *Router) Resolve(ctx context.Context, kind, id string) (any, error) {
	r.mu.RLock()
	l, ok := r.backends[kind]
	if !ok {
		l = r.fallback
	}
	r.mu.RUnlock()

	if l == nil {
		return nil, errors.Join(validator.ErrUnknownKind, fmt.Errorf("%w: %s", ErrUnknownKind, kind))
	}
	return l.Resolve(ctx, kind, id)
}
