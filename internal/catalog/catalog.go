// Package catalog holds the in-memory list of bookable events.
package catalog

import (
	"strings"
	"sync"

	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Catalog is the list of bookable events, seeded at construction. The list
// itself is immutable; only booked counts change, and only through
// IncrementBooked. Nothing here survives a restart.
type Catalog struct {
	mu     sync.RWMutex
	events []domain.Event
	index  map[string]int
}

func New(seed []domain.Event) *Catalog {
	events := make([]domain.Event, len(seed))
	copy(events, seed)
	index := make(map[string]int, len(events))
	for i, e := range events {
		index[e.ID] = i
	}
	return &Catalog{events: events, index: index}
}

// List returns every event in seed order.
func (c *Catalog) List() []domain.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Get returns the event with the given ID.
func (c *Catalog) Get(id string) (domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return domain.Event{}, false
	}
	return c.events[i], true
}

// Filter returns the events matching the query and category, preserving seed
// order. Category CategoryAll matches everything; an empty query matches
// everything; otherwise the query must appear, case-insensitively, in the
// concatenation of title, description and location.
func (c *Catalog) Filter(query, category string) []domain.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Event, 0, len(c.events))
	for _, e := range c.events {
		if category != CategoryAll && e.Category != category {
			continue
		}
		if q != "" {
			haystack := strings.ToLower(e.Title + " " + e.Description + " " + e.Location)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Categories returns the distinct event categories in first-seen order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.events))
	out := make([]string, 0, len(c.events))
	for _, e := range c.events {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}

// IncrementBooked adds one booking to the event, guarded by the catalog
// lock: the capacity check and the increment happen as one step, so
// concurrent callers can never push booked past capacity.
func (c *Catalog) IncrementBooked(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	if c.events[i].Available() <= 0 {
		return domain.ErrSoldOut
	}
	c.events[i].Booked++
	return nil
}
