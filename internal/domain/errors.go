package domain

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrEventNotFound     = errors.New("event not found")
	ErrSoldOut           = errors.New("event is sold out")
	ErrAlreadyBooked     = errors.New("event already booked")
	ErrNameRequired      = errors.New("name required")
	ErrTitleRequired     = errors.New("event title required")
	ErrScheduleRequired  = errors.New("start and end time required")
	ErrEndBeforeStart    = errors.New("end must be after start")
	ErrInvalidTicketType = errors.New("invalid ticket type")
	ErrPriceRequired     = errors.New("paid events need a price above zero")
	ErrInvalidCapacity   = errors.New("invalid capacity")
)
