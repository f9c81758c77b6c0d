package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/scarr-eth/spree-event-booker/internal/catalog"
	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// BookingLedger is the minimal ledger surface the booking operation needs.
type BookingLedger interface {
	HasBooked(ctx context.Context, name, eventID string) (bool, error)
	Record(ctx context.Context, name, eventID string) error
	Bookings(ctx context.Context, name string) ([]string, error)
}

// SessionReader exposes the signed-in identity, if any.
type SessionReader interface {
	Current(ctx context.Context) (*domain.Identity, error)
}

// BookingService runs the single state-changing operation of the system:
// booking one seat on one event for the signed-in user.
type BookingService struct {
	catalog  *catalog.Catalog
	ledger   BookingLedger
	session  SessionReader
	onChange func()

	// mu serializes the whole check-then-act sequence so concurrent
	// requests cannot oversell an event or double-record a ledger entry.
	mu sync.Mutex
}

func NewBookingService(cat *catalog.Catalog, ledger BookingLedger, session SessionReader, opts ...BookingServiceOption) *BookingService {
	svc := &BookingService{
		catalog: cat,
		ledger:  ledger,
		session: session,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type BookingServiceOption func(*BookingService)

// WithChangeListener registers a callback invoked after every successful
// booking, e.g. to refresh a rendered event list.
func WithChangeListener(fn func()) BookingServiceOption {
	return func(s *BookingService) {
		s.onChange = fn
	}
}

// Book records a booking for the signed-in user on the given event.
// Preconditions are evaluated in a fixed order: authentication, event
// existence, remaining capacity, duplicate booking. On success the ledger
// gains one entry and the event's booked count rises by exactly one; on any
// failure nothing changes.
func (s *BookingService) Book(ctx context.Context, eventID string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, err := s.session.Current(ctx)
	if err != nil {
		return domain.Event{}, fmt.Errorf("read session: %w", err)
	}
	if identity == nil {
		return domain.Event{}, domain.ErrNotAuthenticated
	}

	event, ok := s.catalog.Get(eventID)
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	if event.Available() <= 0 {
		return domain.Event{}, domain.ErrSoldOut
	}

	booked, err := s.ledger.HasBooked(ctx, identity.Name, eventID)
	if err != nil {
		return domain.Event{}, err
	}
	if booked {
		return domain.Event{}, domain.ErrAlreadyBooked
	}

	if err := s.ledger.Record(ctx, identity.Name, eventID); err != nil {
		return domain.Event{}, err
	}
	if err := s.catalog.IncrementBooked(eventID); err != nil {
		return domain.Event{}, err
	}

	event, _ = s.catalog.Get(eventID)
	if s.onChange != nil {
		s.onChange()
	}
	return event, nil
}

// Bookings returns the event IDs the signed-in user has booked.
func (s *BookingService) Bookings(ctx context.Context) ([]string, error) {
	identity, err := s.session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if identity == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return s.ledger.Bookings(ctx, identity.Name)
}
