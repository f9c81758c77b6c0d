// Package ledger persists which events each user has booked.
package ledger

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/scarr-eth/spree-event-booker/internal/kv"
)

// storeKey holds the name -> event-ID list mapping in the persistent store.
const storeKey = "bookings"

// Ledger maps a user name to the ordered set of event IDs they have booked.
// A (name, eventID) pair is recorded at most once; there is no removal
// (cancellation is out of scope).
type Ledger struct {
	store kv.Store
	mu    sync.Mutex
}

func New(store kv.Store) *Ledger {
	return &Ledger{store: store}
}

// HasBooked reports whether eventID is recorded for name. An absent name has
// booked nothing.
func (l *Ledger) HasBooked(ctx context.Context, name, eventID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(entries[name], eventID), nil
}

// Record adds eventID to name's set. Recording an already-present pair is a
// no-op, never an error.
func (l *Ledger) Record(ctx context.Context, name, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(entries[name], eventID) {
		return nil
	}
	entries[name] = append(entries[name], eventID)
	if err := kv.WriteJSON(ctx, l.store, storeKey, entries); err != nil {
		return fmt.Errorf("record booking: %w", err)
	}
	return nil
}

// Bookings returns the event IDs booked by name, in booking order.
func (l *Ledger) Bookings(ctx context.Context, name string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(entries[name]), nil
}

func (l *Ledger) load(ctx context.Context) (map[string][]string, error) {
	entries := make(map[string][]string)
	if _, err := kv.ReadJSON(ctx, l.store, storeKey, &entries); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return entries, nil
}
