package business

import (
	"context"
	"errors"
	"fmt"

	"futbolya/internal/api"
	"futbolya/internal/domain"
	"futbolya/internal/session"

	"github.com/rs/zerolog"
)

var ErrNoBusiness = errors.New("this owner has no business yet")

// Service is the client for the /api/business family. The current owner's
// business is always derived through the session manager; there is no
// second ad hoc token decode anywhere in the client.
type Service struct {
	client   *api.Client
	sessions *session.Manager
	log      zerolog.Logger
}

func NewService(client *api.Client, sessions *session.Manager, log zerolog.Logger) *Service {
	return &Service{client: client, sessions: sessions, log: log}
}

func (s *Service) List(ctx context.Context) ([]domain.Business, error) {
	return api.GetList[domain.Business](ctx, s.client, "/api/business/getAll")
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Business, error) {
	b, err := api.GetOne[domain.Business](ctx, s.client, fmt.Sprintf("/api/business/getOne/%d", id))
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CurrentForOwner resolves the logged-in owner's business. An owner has at
// most one; a 404 here means they have not created it yet.
func (s *Service) CurrentForOwner(ctx context.Context) (*domain.Business, error) {
	sess := s.sessions.Current()
	if !sess.LoggedIn() {
		return nil, session.ErrNotLoggedIn
	}

	b, err := api.GetOne[domain.Business](ctx, s.client,
		fmt.Sprintf("/api/business/getByOwner/%d", sess.UserData.UserID))
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrNoBusiness
		}
		return nil, err
	}
	return &b, nil
}

func (s *Service) Create(ctx context.Context, in BusinessInput) (*domain.Business, error) {
	b, err := api.PostJSON[domain.Business](ctx, s.client, "/api/business/add", in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("name", in.BusinessName).Msg("business created")
	return &b, nil
}

func (s *Service) Update(ctx context.Context, id int64, in BusinessInput) (*domain.Business, error) {
	b, err := api.PatchJSON[domain.Business](ctx, s.client,
		fmt.Sprintf("/api/business/update/%d", id), in)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SetActive toggles business activation (admin screen). Deactivated
// businesses disappear from the public pitch listing.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*domain.Business, error) {
	b, err := api.PatchJSON[domain.Business](ctx, s.client,
		fmt.Sprintf("/api/business/update/%d", id), activeBody{Active: active})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/business/remove/%d", id))
}
