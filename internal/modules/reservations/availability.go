package reservations

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"futbolya/internal/domain"
)

// Reservations are hour-granular. When a business carries malformed or
// inverted opening hours, slot generation falls back to this range instead
// of failing.
const (
	defaultOpenHour  = 8
	defaultCloseHour = 22
)

// TimeSlot is one offerable hour. Value is the canonical two-digit hour
// ("08"), Label the display form ("08:00 - 09:00").
type TimeSlot struct {
	Value string
	Label string
}

// SlotAvailability pairs a slot with whether it is still free on the
// chosen date.
type SlotAvailability struct {
	TimeSlot
	Available bool
}

// GenerateSlots builds one slot per integer hour in [openingAt, closingAt),
// both "HH:MM" strings from the owning business. Unparseable or inverted
// hours yield the default range.
func GenerateSlots(openingAt, closingAt string) []TimeSlot {
	open, okOpen := parseHour(openingAt)
	close, okClose := parseHour(closingAt)
	if !okOpen || !okClose || open >= close {
		open, close = defaultOpenHour, defaultCloseHour
	}

	slots := make([]TimeSlot, 0, close-open)
	for h := open; h < close; h++ {
		slots = append(slots, TimeSlot{
			Value: fmt.Sprintf("%02d", h),
			Label: fmt.Sprintf("%02d:00 - %02d:00", h, h+1),
		})
	}
	return slots
}

// Availability recomputes every slot's state for the chosen date. Pure
// function of its inputs; callers re-run it whenever the date changes or
// the occupied list is refreshed.
func Availability(date string, slots []TimeSlot, occupied []domain.OccupiedSlot) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotAvailability{
			TimeSlot:  slot,
			Available: !IsOccupied(date, slot.Value, occupied),
		})
	}
	return out
}

// IsOccupied reports whether (date, hour) collides with an occupied slot.
// Matching is equality on calendar day and truncated hour; every slot is a
// fixed one-hour block so no overlap logic is needed.
func IsOccupied(date, hour string, occupied []domain.OccupiedSlot) bool {
	day := normalizeDay(date)
	h := normalizeHour(hour)
	if day == "" || h == "" {
		return false
	}
	for _, o := range occupied {
		if normalizeDay(o.ReservationDate) == day && normalizeHour(o.ReservationTime) == h {
			return true
		}
	}
	return false
}

// FullyBooked reports whether no slot is left, so the caller can say so
// instead of leaving a silently unusable form.
func FullyBooked(av []SlotAvailability) bool {
	for _, s := range av {
		if s.Available {
			return false
		}
	}
	return len(av) > 0
}

// normalizeDay reduces a date value to its YYYY-MM-DD calendar day as
// written, without shifting it through timezone conversion.
func normalizeDay(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 10 {
		if _, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return s[:10]
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}

// normalizeHour truncates a time value ("14", "14:00", "14:00:00", "9:00")
// to its two-digit hour.
func normalizeHour(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, ":"); idx >= 0 {
		s = s[:idx]
	}
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 23 {
		return ""
	}
	return fmt.Sprintf("%02d", h)
}

func parseHour(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if idx := strings.Index(s, ":"); idx >= 0 {
		s = s[:idx]
	}
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}
