package domain

import "time"

type TicketType string

const (
	TicketFree TicketType = "free"
	TicketPaid TicketType = "paid"
)

// CreatedEvent is a user-authored event descriptor. Records live in their own
// persisted list and are never merged into the catalog.
type CreatedEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Theme       string
	TicketType  TicketType
	Price       float64
	// Capacity is nil for unlimited events.
	Capacity  *int
	Approval  bool
	Image     string
	CreatedAt time.Time
}
