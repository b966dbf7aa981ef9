package domain

import "time"

type UserCategory string

const (
	CategoryUser  UserCategory = "user"
	CategoryOwner UserCategory = "owner"
	CategoryAdmin UserCategory = "admin"
)

type User struct {
	ID        int64        `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Surname   string       `json:"surname,omitempty"`
	Category  UserCategory `json:"category"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt,omitempty"`
}

func (u *User) IsAdmin() bool { return u.Category == CategoryAdmin }
func (u *User) IsOwner() bool { return u.Category == CategoryOwner }
