package api

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an API failure. Every non-2xx response maps to exactly
// one kind so callers branch once instead of re-reading status codes.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
	KindBadResponse // 2xx with a payload shape we do not recognize
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindBadResponse:
		return "bad response"
	default:
		return "unknown"
	}
}

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is the uniform failure value of every API call.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api: %s (status %d)", msg, e.Status)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field != "" {
			parts = append(parts, f.Field+": "+f.Message)
		} else {
			parts = append(parts, f.Message)
		}
	}
	return fmt.Sprintf("api: %s (status %d): %s", msg, e.Status, strings.Join(parts, "; "))
}

func kindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }
func IsForbidden(err error) bool    { return kindOf(err) == KindForbidden }
func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return kindOf(err) == KindConflict }
func IsValidation(err error) bool   { return kindOf(err) == KindValidation }
