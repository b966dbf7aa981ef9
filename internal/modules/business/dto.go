package business

type BusinessInput struct {
	Owner                        int64   `json:"owner,omitempty"`
	Locality                     int64   `json:"locality,omitempty"`
	BusinessName                 string  `json:"businessName,omitempty"`
	Address                      string  `json:"address,omitempty"`
	OpeningAt                    string  `json:"openingAt,omitempty"`
	ClosingAt                    string  `json:"closingAt,omitempty"`
	ReservationDepositPercentage float64 `json:"reservationDepositPercentage,omitempty"`
}

type activeBody struct {
	Active bool `json:"active"`
}
