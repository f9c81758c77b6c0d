package domain

import "time"

// Event is a bookable catalog entry. The booked count is mutated only by the
// booking operation and is rebuilt from the seed on every process start.
type Event struct {
	ID          string
	Title       string
	Description string
	Category    string
	Date        time.Time
	Location    string
	Capacity    int
	Booked      int
	Price       float64
	Image       string
}

// Available returns the number of seats still open, never negative.
func (e Event) Available() int {
	if n := e.Capacity - e.Booked; n > 0 {
		return n
	}
	return 0
}
