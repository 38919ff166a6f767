// Package provider holds the external identity provider adapters. Each
// adapter normalizes one provider's OAuth flow into the Identity shape
// the link service consumes; the service itself never special-cases a
// provider.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/nclabhq/notelab/internal/notelab/domain"
)

var (
	ErrUnknownProvider = errors.New("provider: unknown provider")
	ErrInvalidCode     = errors.New("provider: invalid authorization code")
)

// Identity is the normalized outcome of a provider callback.
type Identity struct {
	// ProviderUserID is the provider-qualified stable id, e.g. "github:12345".
	ProviderUserID string
	Profile        domain.Profile
	AccessToken    *string
	RefreshToken   *string
}

// Adapter is one external identity provider.
type Adapter interface {
	// ID is the registry key and URL path segment, e.g. "github".
	ID() string

	// AuthCodeURL builds the provider authorization URL carrying state.
	AuthCodeURL(state string) string

	// Exchange redeems the callback code for a normalized identity.
	Exchange(ctx context.Context, code string) (Identity, error)
}

// Registry is the strategy table the HTTP layer dispatches through.
type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.ID()] = a
	}
	return r
}

// Register adds an adapter, replacing any previous one with the same id.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.ID()] = a
}

// Get returns the adapter for the given provider id.
func (r *Registry) Get(id string) (Adapter, error) {
	a, ok := r.adapters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	return a, nil
}

// IDs returns the registered provider ids, sorted for stable output.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.adapters))
	for id := range r.adapters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// qualify builds the provider-qualified external id stored on accounts.
func qualify(providerID, subject string) string {
	return providerID + ":" + subject
}
