package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/scarr-eth/spree-event-booker/internal/domain"
	"github.com/scarr-eth/spree-event-booker/internal/session"
)

// SessionHolder is the minimal session surface the sign-in endpoints need.
type SessionHolder interface {
	Current(ctx context.Context) (*domain.Identity, error)
	SignIn(ctx context.Context, auth session.Authenticator) (domain.Identity, error)
	SignOut(ctx context.Context) error
}

// HandleSession returns an HTTP handler for the mock sign-in surface:
// GET reads the signed-in identity, POST signs in by display name, DELETE
// signs out.
func HandleSession(holder SessionHolder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			identity, err := holder.Current(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			if identity == nil {
				writeError(w, http.StatusUnauthorized, codeNotAuthenticated, domain.ErrNotAuthenticated.Error())
				return
			}
			writeJSON(w, http.StatusOK, identityResponse{Name: identity.Name, Role: identity.Role})
		case http.MethodPost:
			var req signInRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			identity, err := holder.SignIn(r.Context(), session.Static{Name: req.Name})
			if err != nil {
				switch err {
				case domain.ErrNameRequired:
					writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			writeJSON(w, http.StatusCreated, identityResponse{Name: identity.Name, Role: identity.Role})
		case http.MethodDelete:
			if err := holder.SignOut(r.Context()); err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

type signInRequest struct {
	Name string `json:"name"`
}

type identityResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
