package domain

import "encoding/json"

// ReservationStatus is the client-side status enum. The backend speaks
// Spanish labels; translation happens on fetch (UnmarshalJSON) and is
// applied explicitly before status updates are sent.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed" // "in progress" on the backend
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

var statusToBackend = map[ReservationStatus]string{
	StatusPending:   "pendiente",
	StatusConfirmed: "en curso",
	StatusCompleted: "completada",
	StatusCancelled: "cancelada",
}

var statusFromBackend = map[string]ReservationStatus{}

func init() {
	for client, backend := range statusToBackend {
		statusFromBackend[backend] = client
	}
}

// BackendLabel maps a client status to the backend's label. Unrecognized
// values pass through unchanged so unexpected data degrades instead of
// failing.
func (s ReservationStatus) BackendLabel() string {
	if label, ok := statusToBackend[s]; ok {
		return label
	}
	return string(s)
}

// StatusFromBackend maps a backend label to the client enum, passing
// unrecognized labels through unchanged.
func StatusFromBackend(label string) ReservationStatus {
	if s, ok := statusFromBackend[label]; ok {
		return s
	}
	return ReservationStatus(label)
}

func (s *ReservationStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = StatusFromBackend(raw)
	return nil
}

// Reservation is one booked hour of one pitch. The capitalized JSON keys
// for date and time are the backend's, not ours.
type Reservation struct {
	ID              int64             `json:"id"`
	ReservationDate string            `json:"ReservationDate"`
	ReservationTime string            `json:"ReservationTime"`
	Pitch           Ref               `json:"pitch"`
	User            Ref               `json:"user"`
	Status          ReservationStatus `json:"status"`
}

// OccupiedSlot is the server's projection of one already-booked hour for a
// pitch. It is read-only input to the availability computation.
type OccupiedSlot struct {
	ReservationDate string `json:"ReservationDate"`
	ReservationTime string `json:"ReservationTime"`
}
