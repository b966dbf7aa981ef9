package session

import (
	"fmt"

	"futbolya/internal/domain"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload the backend issues on login/registration.
// The client decodes it without verifying the signature: the claims drive
// display and menu gating only, real authorization is enforced server-side
// on every request.
type Claims struct {
	UserID   int64               `json:"id"`
	Email    string              `json:"email"`
	Name     string              `json:"name"`
	Surname  string              `json:"surname,omitempty"`
	Category domain.UserCategory `json:"category"`
	jwtlib.RegisteredClaims
}

func (c *Claims) User() *domain.User {
	return &domain.User{
		ID:       c.UserID,
		Email:    c.Email,
		Name:     c.Name,
		Surname:  c.Surname,
		Category: c.Category,
	}
}

// DecodeClaims extracts the payload of an encoded token. No signature
// check, by the same trust model as the rest of the client.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwtlib.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode session token: %w", err)
	}
	return claims, nil
}
