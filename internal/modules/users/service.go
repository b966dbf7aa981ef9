package users

import (
	"context"
	"fmt"

	"futbolya/internal/api"
	"futbolya/internal/domain"

	"github.com/rs/zerolog"
)

// Service is the admin-facing client for the /api/users family. Account
// self-registration lives in the auth module; this one manages existing
// accounts.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return api.GetList[domain.User](ctx, s.client, "/api/users/getAll")
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := api.GetOne[domain.User](ctx, s.client, fmt.Sprintf("/api/users/getOne/%d", id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UserInput) (*domain.User, error) {
	u, err := api.PatchJSON[domain.User](ctx, s.client, fmt.Sprintf("/api/users/update/%d", id), in)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/users/remove/%d", id))
}

type UserInput struct {
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Email    string `json:"email,omitempty"`
	Category string `json:"category,omitempty"`
}
