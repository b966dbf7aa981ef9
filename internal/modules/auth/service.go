package auth

import (
	"context"

	"futbolya/internal/api"
	"futbolya/internal/session"

	"github.com/rs/zerolog"
)

// Service handles login and registration against the backend and persists
// the issued credential through the session manager. It is the only writer
// of the session besides the 401 handler.
type Service struct {
	client   *api.Client
	sessions *session.Manager
	log      zerolog.Logger
}

func NewService(client *api.Client, sessions *session.Manager, log zerolog.Logger) *Service {
	return &Service{client: client, sessions: sessions, log: log}
}

// Login exchanges credentials for a token and stores it. The session
// manager re-derives the user data from the stored value.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	resp, err := api.PostJSON[tokenResponse](ctx, s.client, "/api/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return session.Session{}, err
	}
	if resp.token() == "" {
		return session.Session{}, ErrNoToken
	}

	if err := s.sessions.Login(resp.token()); err != nil {
		return session.Session{}, err
	}
	if err := s.sessions.DecodeErr(); err != nil {
		return session.Session{}, err
	}

	s.log.Info().Str("email", email).Msg("logged in")
	return s.sessions.Current(), nil
}

// Register creates an account. The backend issues a token on successful
// registration, so the user ends up logged in like after a login.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (session.Session, error) {
	resp, err := api.PostJSON[tokenResponse](ctx, s.client, "/api/users/add", req)
	if err != nil {
		return session.Session{}, err
	}

	if token := resp.token(); token != "" {
		if err := s.sessions.Login(token); err != nil {
			return session.Session{}, err
		}
	}
	return s.sessions.Current(), nil
}

func (s *Service) Logout() error {
	return s.sessions.Logout()
}
