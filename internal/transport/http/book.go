package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// Booker is the minimal interface needed to book an event.
type Booker interface {
	Book(ctx context.Context, eventID string) (domain.Event, error)
}

// HandleBookEvent returns an HTTP handler for POST /events/{id}/bookings.
// A duplicate booking is informational, not an error: it answers 200 with
// the already_booked code and leaves all state untouched.
func HandleBookEvent(svc Booker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		eventID, ok := parseBookEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		event, err := svc.Book(r.Context(), eventID)
		if err != nil {
			switch err {
			case domain.ErrNotAuthenticated:
				writeError(w, http.StatusUnauthorized, codeNotAuthenticated, err.Error())
			case domain.ErrEventNotFound:
				writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
			case domain.ErrSoldOut:
				writeError(w, http.StatusConflict, codeSoldOut, err.Error())
			case domain.ErrAlreadyBooked:
				writeJSON(w, http.StatusOK, bookResponse{
					EventID: eventID,
					Status:  codeAlreadyBooked,
				})
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, bookResponse{
			EventID:   event.ID,
			Status:    "booked",
			Booked:    event.Booked,
			Available: event.Available(),
		})
	}
}

type bookResponse struct {
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	Booked    int    `json:"booked,omitempty"`
	Available int    `json:"available,omitempty"`
}

// parseBookEventPath extracts the event ID from /events/{id}/bookings.
func parseBookEventPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/events/")
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, "/bookings")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
