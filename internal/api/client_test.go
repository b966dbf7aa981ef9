package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) BearerToken() string { return string(s) }

func TestClient_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(staticToken("tok-123")))
	_, err := GetList[idOnly](context.Background(), c, "/api/pitchs/getAll")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(staticToken("")))
	_, err := GetList[idOnly](context.Background(), c, "/api/pitchs/getAll")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedFiresHandler(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	fired := false
	c := NewClient(srv.URL, WithUnauthorizedHandler(func() { fired = true }))

	_, err := GetOne[idOnly](context.Background(), c, "/api/users/getOne/1")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, fired)

	apiErr := err.(*Error)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusForbidden, IsForbidden},
		{http.StatusNotFound, IsNotFound},
		{http.StatusConflict, IsConflict},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"nope"}`))
		}))
		_, err := GetOne[idOnly](context.Background(), NewClient(srv.URL), "/api/x")
		srv.Close()

		require.Error(t, err, "status %d", tc.status)
		assert.True(t, tc.check(err), "status %d", tc.status)
	}
}

func TestClient_NotFoundOnCollectionIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no pitches found"}`))
	}))
	defer srv.Close()

	items, err := GetList[idOnly](context.Background(), NewClient(srv.URL), "/api/pitchs/getAll")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid input","errors":[{"param":"email","msg":"must be an email"},{"msg":"password too short"}]}`))
	}))
	defer srv.Close()

	_, err := PostJSON[idOnly](context.Background(), NewClient(srv.URL), "/api/users/add", map[string]string{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	apiErr := err.(*Error)
	require.Len(t, apiErr.Fields, 2)
	assert.Equal(t, "email", apiErr.Fields[0].Field)
	assert.Equal(t, "must be an email", apiErr.Fields[0].Message)
	assert.Empty(t, apiErr.Fields[1].Field)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`something broke`))
	}))
	defer srv.Close()

	_, err := GetOne[idOnly](context.Background(), NewClient(srv.URL), "/api/x")
	require.Error(t, err)
	apiErr := err.(*Error)
	assert.Equal(t, KindUnknown, apiErr.Kind)
	assert.Equal(t, "something broke", apiErr.Message)
}
