package catalog

import (
	"context"
	"fmt"

	"futbolya/internal/api"
	"futbolya/internal/domain"

	"github.com/rs/zerolog"
)

// Service covers the two lookup catalogs the admin maintains: pitch
// categories and localities. Both are plain CRUD families.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

type NameInput struct {
	Name string `json:"name"`
}

/* ---------- CATEGORIES ---------- */

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return api.GetList[domain.Category](ctx, s.client, "/api/category/getAll")
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	c, err := api.PostJSON[domain.Category](ctx, s.client, "/api/category/add", NameInput{Name: name})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	c, err := api.PatchJSON[domain.Category](ctx, s.client,
		fmt.Sprintf("/api/category/update/%d", id), NameInput{Name: name})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// RemoveCategory deletes a category. A 409 means pitches still reference
// it; the caller surfaces that as-is.
func (s *Service) RemoveCategory(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/category/remove/%d", id))
}

/* ---------- LOCALITIES ---------- */

func (s *Service) Localities(ctx context.Context) ([]domain.Locality, error) {
	return api.GetList[domain.Locality](ctx, s.client, "/api/localities/getAll")
}

func (s *Service) CreateLocality(ctx context.Context, name string) (*domain.Locality, error) {
	l, err := api.PostJSON[domain.Locality](ctx, s.client, "/api/localities/add", NameInput{Name: name})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) UpdateLocality(ctx context.Context, id int64, name string) (*domain.Locality, error) {
	l, err := api.PatchJSON[domain.Locality](ctx, s.client,
		fmt.Sprintf("/api/localities/update/%d", id), NameInput{Name: name})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) RemoveLocality(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/localities/remove/%d", id))
}
