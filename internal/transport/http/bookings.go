package http

import (
	"context"
	"net/http"

	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// BookingLister exposes the signed-in user's booked event IDs.
type BookingLister interface {
	Bookings(ctx context.Context) ([]string, error)
}

// HandleListBookings returns an HTTP handler for GET /bookings.
func HandleListBookings(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		ids, err := svc.Bookings(r.Context())
		if err != nil {
			switch err {
			case domain.ErrNotAuthenticated:
				writeError(w, http.StatusUnauthorized, codeNotAuthenticated, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		if ids == nil {
			ids = []string{}
		}
		writeJSON(w, http.StatusOK, bookingsResponse{EventIDs: ids})
	}
}

type bookingsResponse struct {
	EventIDs []string `json:"event_ids"`
}
