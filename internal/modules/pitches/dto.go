package pitches

import (
	"fmt"
	"io"
	"strconv"
)

// PitchInput is the form data of a pitch create or update. Image is
// optional; when present the request goes out as multipart, otherwise as
// JSON (updates only — creates are always multipart, matching the
// endpoint).
type PitchInput struct {
	BusinessID int64
	Rating     float64
	Price      float64
	Size       string
	GroundType string
	Roof       bool

	ImageName string
	Image     io.Reader
}

func (in PitchInput) formFields() map[string]string {
	return map[string]string{
		"business":   strconv.FormatInt(in.BusinessID, 10),
		"rating":     fmt.Sprintf("%g", in.Rating),
		"price":      fmt.Sprintf("%g", in.Price),
		"size":       in.Size,
		"groundType": in.GroundType,
		"roof":       strconv.FormatBool(in.Roof),
	}
}

type updateBody struct {
	Business   int64   `json:"business,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Size       string  `json:"size,omitempty"`
	GroundType string  `json:"groundType,omitempty"`
	Roof       bool    `json:"roof"`
}
