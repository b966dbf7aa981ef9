package business

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"futbolya/internal/api"
	"futbolya/internal/domain"
	"futbolya/internal/session"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInOwner(t *testing.T) *session.Manager {
	t.Helper()
	claims := &session.Claims{
		UserID:   42,
		Email:    "owner@example.com",
		Name:     "Marta",
		Category: domain.CategoryOwner,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	store := session.NewMemoryStore()
	require.NoError(t, store.Set(tok))
	return session.NewManager(store, zerolog.Nop())
}

func TestCurrentForOwner_UsesSessionClaims(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/business/getByOwner/42", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": 9, "businessName": "El Monumental", "openingAt": "10:00", "closingAt": "22:00", "active": true},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	sessions := loggedInOwner(t)
	svc := NewService(api.NewClient(srv.URL, api.WithTokenSource(sessions)), sessions, zerolog.Nop())

	b, err := svc.CurrentForOwner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), b.ID)
	assert.Equal(t, "El Monumental", b.BusinessName)
}

func TestCurrentForOwner_RequiresLogin(t *testing.T) {
	sessions := session.NewManager(session.NewMemoryStore(), zerolog.Nop())
	svc := NewService(api.NewClient("http://unused"), sessions, zerolog.Nop())

	_, err := svc.CurrentForOwner(context.Background())
	require.ErrorIs(t, err, session.ErrNotLoggedIn)
}

func TestCurrentForOwner_NoBusinessYet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/business/getByOwner/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	sessions := loggedInOwner(t)
	svc := NewService(api.NewClient(srv.URL, api.WithTokenSource(sessions)), sessions, zerolog.Nop())

	_, err := svc.CurrentForOwner(context.Background())
	require.ErrorIs(t, err, ErrNoBusiness)
}

func TestSetActive_PatchesActivationFlag(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/business/update/9", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id":9,"active":true}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	sessions := loggedInOwner(t)
	svc := NewService(api.NewClient(srv.URL), sessions, zerolog.Nop())

	b, err := svc.SetActive(context.Background(), 9, true)
	require.NoError(t, err)
	assert.True(t, b.Active)
	assert.Equal(t, map[string]any{"active": true}, got)
}
