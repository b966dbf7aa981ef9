package pitches

import (
	"context"
	"fmt"
	"net/http"

	"futbolya/internal/api"
	"futbolya/internal/domain"

	"github.com/rs/zerolog"
)

type Service struct {
	client *api.Client
	log    zerolog.Logger
}

func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

// List returns every pitch. Public endpoint, works logged out.
func (s *Service) List(ctx context.Context) ([]domain.Pitch, error) {
	return api.GetList[domain.Pitch](ctx, s.client, "/api/pitchs/getAll")
}

// ListActive returns pitches whose business is active; this is what the
// browsing screen shows to end users.
func (s *Service) ListActive(ctx context.Context) ([]domain.Pitch, error) {
	return api.GetList[domain.Pitch](ctx, s.client, "/api/pitchs/getAllFromActiveBusinesses")
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Pitch, error) {
	p, err := api.GetOne[domain.Pitch](ctx, s.client, fmt.Sprintf("/api/pitchs/getOne/%d", id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) ByBusiness(ctx context.Context, businessID int64) ([]domain.Pitch, error) {
	return api.GetList[domain.Pitch](ctx, s.client,
		fmt.Sprintf("/api/pitchs/getByBusiness/%d", businessID))
}

// Create posts the pitch as multipart form data, with the image file when
// one is attached.
func (s *Service) Create(ctx context.Context, in PitchInput) (*domain.Pitch, error) {
	var file *api.Upload
	if in.Image != nil {
		file = &api.Upload{Field: "image", Filename: in.ImageName, Reader: in.Image}
	}
	p, err := api.SendMultipart[domain.Pitch](ctx, s.client, http.MethodPost, "/api/pitchs/add", in.formFields(), file)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("business", in.BusinessID).Msg("pitch created")
	return &p, nil
}

// Update patches a pitch; multipart when a new image accompanies the
// change, plain JSON otherwise.
func (s *Service) Update(ctx context.Context, id int64, in PitchInput) (*domain.Pitch, error) {
	path := fmt.Sprintf("/api/pitchs/update/%d", id)

	if in.Image != nil {
		file := &api.Upload{Field: "image", Filename: in.ImageName, Reader: in.Image}
		p, err := api.SendMultipart[domain.Pitch](ctx, s.client, http.MethodPatch, path, in.formFields(), file)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}

	p, err := api.PatchJSON[domain.Pitch](ctx, s.client, path, updateBody{
		Business:   in.BusinessID,
		Rating:     in.Rating,
		Price:      in.Price,
		Size:       in.Size,
		GroundType: in.GroundType,
		Roof:       in.Roof,
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/pitchs/remove/%d", id))
}
