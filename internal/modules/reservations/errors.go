package reservations

import "errors"

var (
	ErrSlotTaken        = errors.New("this slot was just taken")
	ErrMissingSelection = errors.New("a date and an hour are required")
)
