package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/scarr-eth/spree-event-booker/internal/catalog"
	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

type fakeLedger struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: make(map[string][]string)}
}

func (l *fakeLedger) HasBooked(_ context.Context, name, eventID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range l.entries[name] {
		if id == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (l *fakeLedger) Record(_ context.Context, name, eventID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range l.entries[name] {
		if id == eventID {
			return nil
		}
	}
	l.entries[name] = append(l.entries[name], eventID)
	return nil
}

func (l *fakeLedger) Bookings(_ context.Context, name string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries[name]...), nil
}

type fakeSession struct {
	identity *domain.Identity
}

func (s *fakeSession) Current(context.Context) (*domain.Identity, error) {
	return s.identity, nil
}

func signedIn(name string) *fakeSession {
	return &fakeSession{identity: &domain.Identity{Name: name, Role: domain.RoleUser}}
}

func TestBookingService_Book(t *testing.T) {
	t.Parallel()

	seed := []domain.Event{
		{ID: "EVT001", Title: "Web3 Conference", Category: "Conference", Capacity: 100, Booked: 12},
		{ID: "EVT002", Title: "Indie Music Night", Category: "Music", Capacity: 1, Booked: 0},
		{ID: "EVT003", Title: "Art Fair", Category: "Art", Capacity: 10, Booked: 10},
	}

	t.Run("successful booking increments count and records ledger entry", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		ledger := newFakeLedger()
		svc := NewBookingService(cat, ledger, signedIn("alice"))

		event, err := svc.Book(context.Background(), "EVT001")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if event.Booked != 13 {
			t.Fatalf("expected booked 13, got %d", event.Booked)
		}
		if booked, _ := ledger.HasBooked(context.Background(), "alice", "EVT001"); !booked {
			t.Fatalf("expected ledger entry for alice/EVT001")
		}
	})

	t.Run("not authenticated", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		svc := NewBookingService(cat, newFakeLedger(), &fakeSession{})

		_, err := svc.Book(context.Background(), "EVT001")
		if err != domain.ErrNotAuthenticated {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("event not found", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		svc := NewBookingService(cat, newFakeLedger(), signedIn("alice"))

		_, err := svc.Book(context.Background(), "EVT999")
		if err != domain.ErrEventNotFound {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("sold out never mutates state", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		ledger := newFakeLedger()
		svc := NewBookingService(cat, ledger, signedIn("alice"))

		_, err := svc.Book(context.Background(), "EVT003")
		if err != domain.ErrSoldOut {
			t.Fatalf("expected ErrSoldOut, got %v", err)
		}
		event, _ := cat.Get("EVT003")
		if event.Booked != 10 {
			t.Fatalf("expected booked unchanged at 10, got %d", event.Booked)
		}
		if booked, _ := ledger.HasBooked(context.Background(), "alice", "EVT003"); booked {
			t.Fatalf("expected no ledger entry after sold-out failure")
		}
	})

	t.Run("second booking is informational and changes nothing", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		ledger := newFakeLedger()
		svc := NewBookingService(cat, ledger, signedIn("alice"))

		if _, err := svc.Book(context.Background(), "EVT001"); err != nil {
			t.Fatalf("first booking failed: %v", err)
		}
		_, err := svc.Book(context.Background(), "EVT001")
		if err != domain.ErrAlreadyBooked {
			t.Fatalf("expected ErrAlreadyBooked, got %v", err)
		}

		event, _ := cat.Get("EVT001")
		if event.Booked != 13 {
			t.Fatalf("expected booked 13 after duplicate attempt, got %d", event.Booked)
		}
		ids, _ := ledger.Bookings(context.Background(), "alice")
		if len(ids) != 1 {
			t.Fatalf("expected exactly one ledger entry, got %d", len(ids))
		}
	})

	t.Run("last seat goes to the first booker", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		ledger := newFakeLedger()
		holder := signedIn("alice")
		svc := NewBookingService(cat, ledger, holder)

		event, err := svc.Book(context.Background(), "EVT002")
		if err != nil {
			t.Fatalf("alice booking failed: %v", err)
		}
		if event.Booked != 1 {
			t.Fatalf("expected booked 1, got %d", event.Booked)
		}

		holder.identity = &domain.Identity{Name: "bob", Role: domain.RoleUser}
		_, err = svc.Book(context.Background(), "EVT002")
		if err != domain.ErrSoldOut {
			t.Fatalf("expected ErrSoldOut for bob, got %v", err)
		}
	})

	t.Run("change listener fires after success only", func(t *testing.T) {
		t.Parallel()
		cat := catalog.New(seed)
		calls := 0
		svc := NewBookingService(cat, newFakeLedger(), signedIn("alice"),
			WithChangeListener(func() { calls++ }))

		if _, err := svc.Book(context.Background(), "EVT001"); err != nil {
			t.Fatalf("booking failed: %v", err)
		}
		if _, err := svc.Book(context.Background(), "EVT003"); err != domain.ErrSoldOut {
			t.Fatalf("expected ErrSoldOut, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 listener call, got %d", calls)
		}
	})
}

// rotatingSession hands every Current call a distinct identity, simulating
// many users hitting one service.
type rotatingSession struct {
	counter atomic.Int64
}

func (s *rotatingSession) Current(context.Context) (*domain.Identity, error) {
	n := s.counter.Add(1)
	return &domain.Identity{Name: fmt.Sprintf("user-%d", n), Role: domain.RoleUser}, nil
}

func TestBookingService_Book_ConcurrentNeverOversells(t *testing.T) {
	t.Parallel()

	const capacity = 5
	const users = 20

	cat := catalog.New([]domain.Event{{ID: "EVT100", Title: "Small Hall", Capacity: capacity}})
	ledger := newFakeLedger()
	svc := NewBookingService(cat, ledger, &rotatingSession{})

	var successes atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Book(context.Background(), "EVT100"); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := successes.Load(); got != capacity {
		t.Fatalf("expected exactly %d successful bookings, got %d", capacity, got)
	}
	event, _ := cat.Get("EVT100")
	if event.Booked != capacity {
		t.Fatalf("expected booked %d, got %d", capacity, event.Booked)
	}
}

func TestBookingService_Bookings(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]domain.Event{
		{ID: "EVT001", Capacity: 5},
		{ID: "EVT002", Capacity: 5},
	})
	svc := NewBookingService(cat, newFakeLedger(), signedIn("alice"))

	if _, err := svc.Book(context.Background(), "EVT002"); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := svc.Book(context.Background(), "EVT001"); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	ids, err := svc.Bookings(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 || ids[0] != "EVT002" || ids[1] != "EVT001" {
		t.Fatalf("expected booking order preserved, got %v", ids)
	}

	signedOut := NewBookingService(cat, newFakeLedger(), &fakeSession{})
	if _, err := signedOut.Bookings(context.Background()); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
