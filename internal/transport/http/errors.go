package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidTimestamp   = "invalid_timestamp"
	codeNotAuthenticated   = "not_authenticated"
	codeEventNotFound      = "event_not_found"
	codeSoldOut            = "sold_out"
	codeAlreadyBooked      = "already_booked"
	codeNameRequired       = "name_required"
	codeTitleRequired      = "title_required"
	codeScheduleRequired   = "schedule_required"
	codeEndBeforeStart     = "end_before_start"
	codeInvalidTicketType  = "invalid_ticket_type"
	codePriceRequired      = "price_required"
	codeInvalidCapacity    = "invalid_capacity"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
