package domain

import "encoding/json"

// Business groups the pitches of one owner. OpeningAt/ClosingAt are "HH:MM"
// strings and bound the hourly reservation slots of every pitch under it.
type Business struct {
	ID                           int64   `json:"id"`
	Owner                        Ref     `json:"owner"`
	Locality                     Ref     `json:"locality"`
	BusinessName                 string  `json:"businessName"`
	Address                      string  `json:"address"`
	OpeningAt                    string  `json:"openingAt"`
	ClosingAt                    string  `json:"closingAt"`
	ReservationDepositPercentage float64 `json:"reservationDepositPercentage"`
	Active                       bool    `json:"active"`
	AverageRating                float64 `json:"averageRating"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Locality struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Coupon struct {
	ID                 int64   `json:"id"`
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Business           Ref     `json:"business"`
	Active             bool    `json:"active"`
	ExpiresAt          string  `json:"expiresAt,omitempty"`
}

// DecodeBusiness decodes a Ref's embedded object into a Business. Returns
// false when the API sent only the bare id.
func DecodeBusiness(r Ref) (*Business, bool) {
	if !r.Embedded() {
		return nil, false
	}
	var b Business
	if err := json.Unmarshal(r.Raw, &b); err != nil {
		return nil, false
	}
	return &b, true
}
