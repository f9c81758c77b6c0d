package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/scarr-eth/spree-event-booker/internal/app"
	"github.com/scarr-eth/spree-event-booker/internal/domain"
)

// EventCreator is the minimal interface needed for the event creation form.
type EventCreator interface {
	Create(ctx context.Context, in app.CreateEventInput) (domain.CreatedEvent, error)
	List(ctx context.Context) ([]domain.CreatedEvent, error)
}

// HandleCreatedEvents returns an HTTP handler for authoring and listing
// created events. The created list is separate from the catalog.
func HandleCreatedEvents(svc EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			records, err := svc.List(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]createdEventResponse, 0, len(records))
			for _, rec := range records {
				resp = append(resp, newCreatedEventResponse(rec))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req createEventRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			start, ok := parseTimestamp(req.Start)
			if !ok {
				writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid start timestamp")
				return
			}
			end, ok := parseTimestamp(req.End)
			if !ok {
				writeError(w, http.StatusBadRequest, codeInvalidTimestamp, "invalid end timestamp")
				return
			}

			created, err := svc.Create(r.Context(), app.CreateEventInput{
				Title:       req.Title,
				Description: req.Description,
				Location:    req.Location,
				Start:       start,
				End:         end,
				Theme:       req.Theme,
				TicketType:  req.TicketType,
				Price:       req.Price,
				Capacity:    req.Capacity,
				Approval:    req.Approval,
				Image:       req.Image,
			})
			if err != nil {
				switch err {
				case domain.ErrTitleRequired:
					writeError(w, http.StatusBadRequest, codeTitleRequired, err.Error())
				case domain.ErrScheduleRequired:
					writeError(w, http.StatusBadRequest, codeScheduleRequired, err.Error())
				case domain.ErrEndBeforeStart:
					writeError(w, http.StatusBadRequest, codeEndBeforeStart, err.Error())
				case domain.ErrInvalidTicketType:
					writeError(w, http.StatusBadRequest, codeInvalidTicketType, err.Error())
				case domain.ErrPriceRequired:
					writeError(w, http.StatusBadRequest, codePriceRequired, err.Error())
				case domain.ErrInvalidCapacity:
					writeError(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			writeJSON(w, http.StatusCreated, newCreatedEventResponse(created))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// parseTimestamp accepts RFC3339; an empty value maps to the zero time so
// the service can report the missing-schedule rule.
func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type createEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Theme       string  `json:"theme"`
	TicketType  string  `json:"ticketType"`
	Price       float64 `json:"price"`
	Capacity    *int    `json:"capacity"`
	Approval    bool    `json:"approval"`
	Image       string  `json:"image"`
}

type createdEventResponse struct {
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

func newCreatedEventResponse(e domain.CreatedEvent) createdEventResponse {
	return createdEventResponse{
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
