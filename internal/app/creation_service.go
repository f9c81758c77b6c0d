package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/scarr-eth/spree-event-booker/internal/clock"
	"github.com/scarr-eth/spree-event-booker/internal/domain"
	"github.com/scarr-eth/spree-event-booker/internal/kv"
)

// creationsKey holds the authored-event list in the persistent store,
// newest first. The list is independent of the catalog and never merged
// into it.
const creationsKey = "events"

// idPrefix starts every generated created-event identifier; the rest is the
// creation time in unix milliseconds.
const idPrefix = "EVT"

// CreationService validates and records user-authored event descriptors.
type CreationService struct {
	store kv.Store
	clock clock.Clock
	mu    sync.Mutex
}

func NewCreationService(store kv.Store, clk clock.Clock) *CreationService {
	return &CreationService{store: store, clock: clk}
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Theme       string
	TicketType  string
	Price       float64
	// Capacity is nil for unlimited events.
	Capacity *int
	Approval bool
	Image    string
}

// Create validates the input and, on success, prepends a new record to the
// persisted creation list. A validation failure reports the violated rule
// and writes nothing.
func (s *CreationService) Create(ctx context.Context, in CreateEventInput) (domain.CreatedEvent, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.CreatedEvent{}, domain.ErrTitleRequired
	}
	if in.Start.IsZero() || in.End.IsZero() {
		return domain.CreatedEvent{}, domain.ErrScheduleRequired
	}
	if !in.Start.Before(in.End) {
		return domain.CreatedEvent{}, domain.ErrEndBeforeStart
	}

	ticketType := domain.TicketType(in.TicketType)
	switch ticketType {
	case domain.TicketFree, domain.TicketPaid:
	default:
		return domain.CreatedEvent{}, domain.ErrInvalidTicketType
	}
	price := in.Price
	if ticketType == domain.TicketPaid {
		if price <= 0 {
			return domain.CreatedEvent{}, domain.ErrPriceRequired
		}
	} else {
		price = 0
	}
	if in.Capacity != nil && *in.Capacity <= 0 {
		return domain.CreatedEvent{}, domain.ErrInvalidCapacity
	}

	now := s.clock.Now()
	created := domain.CreatedEvent{
		ID:          idPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Start:       in.Start,
		End:         in.End,
		Theme:       in.Theme,
		TicketType:  ticketType,
		Price:       price,
		Capacity:    in.Capacity,
		Approval:    in.Approval,
		Image:       in.Image,
		CreatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return domain.CreatedEvent{}, err
	}
	records = append([]createdEventRecord{newCreatedEventRecord(created)}, records...)
	if err := kv.WriteJSON(ctx, s.store, creationsKey, records); err != nil {
		return domain.CreatedEvent{}, fmt.Errorf("store created event: %w", err)
	}
	return created, nil
}

// List returns the persisted creation list, newest first.
func (s *CreationService) List(ctx context.Context) ([]domain.CreatedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CreatedEvent, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (s *CreationService) load(ctx context.Context) ([]createdEventRecord, error) {
	var records []createdEventRecord
	if _, err := kv.ReadJSON(ctx, s.store, creationsKey, &records); err != nil {
		return nil, fmt.Errorf("load created events: %w", err)
	}
	return records, nil
}

// createdEventRecord is the serialized form of a created event in the
// persistent store.
type createdEventRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Theme       string    `json:"theme"`
	TicketType  string    `json:"ticketType"`
	Price       float64   `json:"price"`
	Capacity    *int      `json:"capacity"`
	Approval    bool      `json:"approval"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newCreatedEventRecord(e domain.CreatedEvent) createdEventRecord {
	return createdEventRecord{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Start:       e.Start,
		End:         e.End,
		Theme:       e.Theme,
		TicketType:  string(e.TicketType),
		Price:       e.Price,
		Capacity:    e.Capacity,
		Approval:    e.Approval,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
	}
}

func (r createdEventRecord) toDomain() domain.CreatedEvent {
	return domain.CreatedEvent{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
		Theme:       r.Theme,
		TicketType:  domain.TicketType(r.TicketType),
		Price:       r.Price,
		Capacity:    r.Capacity,
		Approval:    r.Approval,
		Image:       r.Image,
		CreatedAt:   r.CreatedAt,
	}
}
