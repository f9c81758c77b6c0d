package catalog

import (
	"time"

	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// Seed returns the fixed demo event list the catalog is rebuilt from on
// every start.
func Seed() []domain.Event {
	return []domain.Event{
		{
			ID:       "EVT001",
			Title:    "Web3 Conference 2025",
			Category: "Conference",
			Date:     time.Date(2025, 1, 29, 10, 0, 0, 0, time.UTC),
			Location: "Grand Chapiteau",
			Capacity: 120,
			Booked:   12,
			Price:    20,
			Image:    "https://images.unsplash.com/photo-1575029645663-d8faa1ac2880?auto=format&fit=crop&q=80&w=869",
		},
		{
			ID:       "EVT002",
			Title:    "Web design conference 2023",
			Category: "Conference",
			Date:     time.Date(2025, 2, 15, 16, 0, 0, 0, time.UTC),
			Location: "Grand Chapiteau",
			Capacity: 80,
			Booked:   40,
			Price:    50,
			Image:    "https://images.unsplash.com/photo-1587440871875-191322ee64b0?auto=format&fit=crop&q=80&w=871",
		},
		{
			ID:       "EVT003",
			Title:    "Digital Economy Conference 2023",
			Category: "Conference",
			Date:     time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC),
			Location: "Convention Center",
			Capacity: 200,
			Booked:   160,
			Price:    65,
			Image:    "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?auto=format&fit=crop&q=80&w=870",
		},
		{
			ID:       "EVT004",
			Title:    "Fashion Pop-up",
			Category: "Fashion",
			Date:     time.Date(2025, 4, 2, 11, 0, 0, 0, time.UTC),
			Location: "Market Hall",
			Capacity: 80,
			Booked:   22,
			Price:    10,
			Image:    "https://images.unsplash.com/photo-1543728069-a3f97c5a2f32?auto=format&fit=crop&q=80&w=869",
		},
		{
			ID:       "EVT005",
			Title:    "Indie Music Night",
			Category: "Music",
			Date:     time.Date(2025, 4, 25, 19, 0, 0, 0, time.UTC),
			Location: "Blue Stage",
			Capacity: 150,
			Booked:   72,
			Price:    25,
			Image:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?auto=format&fit=crop&w=800&q=60",
		},
		{
			ID:       "EVT006",
			Title:    "Art & Lifestyle Fair",
			Category: "Art",
			Date:     time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC),
			Location: "East Wing",
			Capacity: 60,
			Booked:   6,
			Price:    0,
			Image:    "https://images.unsplash.com/photo-1603228254119-e6a4d095dc59?auto=format&fit=crop&q=80&w=871",
		},
	}
}
