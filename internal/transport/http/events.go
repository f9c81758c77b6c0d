package http

import (
	"net/http"
	"time"

	"github.com/scarr-eth/spree-event-booker/internal/catalog"
	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// EventCatalog is the minimal catalog surface the listing endpoints need.
type EventCatalog interface {
	Filter(query, category string) []domain.Event
	Categories() []string
}

// HandleListEvents returns an HTTP handler for the filtered event listing.
func HandleListEvents(cat EventCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		query := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")
		if category == "" {
			category = catalog.CategoryAll
		}

		events := cat.Filter(query, category)
		resp := make([]eventResponse, 0, len(events))
		for _, event := range events {
			resp = append(resp, newEventResponse(event))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleListCategories returns an HTTP handler for the distinct category
// list used to populate the filter control.
func HandleListCategories(cat EventCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, cat.Categories())
	}
}

type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Booked      int       `json:"booked"`
	Available   int       `json:"available"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
}

func newEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Location:    e.Location,
		Capacity:    e.Capacity,
		Booked:      e.Booked,
		Available:   e.Available(),
		Price:       e.Price,
		Image:       e.Image,
	}
}
