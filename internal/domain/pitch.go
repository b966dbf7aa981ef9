package domain

import "time"

type Pitch struct {
	ID         int64     `json:"id"`
	Rating     float64   `json:"rating"`
	Size       string    `json:"size"`
	GroundType string    `json:"groundType"`
	Roof       bool      `json:"roof"`
	Price      float64   `json:"price"`
	Business   Ref       `json:"business"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}
