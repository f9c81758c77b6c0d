// Package session holds the mock signed-in identity for the current
// process, mirroring a browser tab session.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/scarr-eth/spree-event-booker/internal/domain"
	"github.com/scarr-eth/spree-event-booker/internal/kv"
)

// storeKey holds the identity in the session-scoped store.
const storeKey = "user"

// Authenticator supplies an identity from some sign-in mechanism. A returned
// identity with an empty name means the sign-in was cancelled.
type Authenticator interface {
	Authenticate(ctx context.Context) (domain.Identity, error)
}

// Static is an Authenticator that always yields the given display name, such
// as one taken from a sign-in request.
type Static struct {
	Name string
}

func (s Static) Authenticate(context.Context) (domain.Identity, error) {
	return domain.Identity{Name: strings.TrimSpace(s.Name), Role: domain.RoleUser}, nil
}

// Holder keeps at most one signed-in identity. The backing store is session
// scoped: it does not outlive the process.
type Holder struct {
	store kv.Store
	mu    sync.Mutex
}

func NewHolder(store kv.Store) *Holder {
	return &Holder{store: store}
}

// Current returns the signed-in identity, or nil when signed out.
func (h *Holder) Current(ctx context.Context) (*domain.Identity, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var id domain.Identity
	ok, err := kv.ReadJSON(ctx, h.store, storeKey, &id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &id, nil
}

// SignIn authenticates via the provider and stores the resulting identity,
// replacing any previous one. A cancelled sign-in (empty name) fails with
// ErrNameRequired and leaves the session untouched.
func (h *Holder) SignIn(ctx context.Context, auth Authenticator) (domain.Identity, error) {
	id, err := auth.Authenticate(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	if id.Name == "" {
		return domain.Identity{}, domain.ErrNameRequired
	}
	if id.Role == "" {
		id.Role = domain.RoleUser
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := kv.WriteJSON(ctx, h.store, storeKey, id); err != nil {
		return domain.Identity{}, fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// SignOut clears the identity. Signing out while signed out is a no-op.
func (h *Holder) SignOut(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.store.Delete(ctx, storeKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
