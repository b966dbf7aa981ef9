package auth

import "encoding/json"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse tolerates the two shapes the backend uses for issued
// credentials: {"token": "..."} and a bare encoded string.
type tokenResponse struct {
	Token string
}

func (t *tokenResponse) UnmarshalJSON(b []byte) error {
	var obj struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(b, &obj); err == nil && obj.Token != "" {
		t.Token = obj.Token
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		t.Token = s
	}
	return nil
}

func (t tokenResponse) token() string { return t.Token }

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Category string `json:"category,omitempty"`
}
