package reservations

// CreateReservationRequest carries the user's slot selection. Date is
// YYYY-MM-DD, Hour the canonical two-digit slot value.
type CreateReservationRequest struct {
	Date    string
	Hour    string
	PitchID int64
	UserID  int64
}

// createBody is the wire shape of POST /api/reservations/add. The status
// sent on create is the raw client value; updates send the mapped backend
// label. The asymmetry matches the deployed backend contract.
type createBody struct {
	ReservationDate string `json:"ReservationDate"`
	ReservationTime string `json:"ReservationTime"`
	Pitch           int64  `json:"pitch"`
	User            int64  `json:"user"`
	Status          string `json:"status"`
}

type updateStatusBody struct {
	Status string `json:"status"`
}

// DayAvailability is what the booking screen renders for one pitch/date.
type DayAvailability struct {
	Date        string
	Slots       []SlotAvailability
	FullyBooked bool
}
