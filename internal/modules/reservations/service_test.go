package reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"futbolya/internal/api"
	"futbolya/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend keeps an in-memory occupied list and serves the two
// reservation endpoints the booking flow touches.
type fakeBackend struct {
	mu       sync.Mutex
	occupied []domain.OccupiedSlot
	creates  int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations/findOccupiedSlotsByPitch/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if len(f.occupied) == 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "no reservations found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": f.occupied})
	})
	mux.HandleFunc("/api/reservations/add", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ReservationDate string `json:"ReservationDate"`
			ReservationTime string `json:"ReservationTime"`
			Pitch           int64  `json:"pitch"`
			User            int64  `json:"user"`
			Status          string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.creates++
		f.occupied = append(f.occupied, domain.OccupiedSlot{
			ReservationDate: body.ReservationDate,
			ReservationTime: body.ReservationTime + ":00:00",
		})
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "ReservationDate": body.ReservationDate,
			"ReservationTime": body.ReservationTime,
			"pitch":           body.Pitch, "user": body.User,
			"status": body.Status,
		})
	})
	return mux
}

func newTestService(t *testing.T, h http.Handler) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewService(api.NewClient(srv.URL), zerolog.Nop()), srv
}

func TestService_BookThenRecheck(t *testing.T) {
	backend := &fakeBackend{}
	svc, _ := newTestService(t, backend.handler())
	ctx := context.Background()

	business := &domain.Business{OpeningAt: "08:00", ClosingAt: "22:00"}

	day, err := svc.AvailabilityFor(ctx, 5, business, "2025-04-01")
	require.NoError(t, err)
	require.Len(t, day.Slots, 14)
	for _, s := range day.Slots {
		assert.True(t, s.Available)
	}

	res, err := svc.Create(ctx, CreateReservationRequest{
		Date: "2025-04-01", Hour: "10", PitchID: 5, UserID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, res.Status)

	// After the occupied list is refreshed the booked hour is gone.
	day, err = svc.AvailabilityFor(ctx, 5, business, "2025-04-01")
	require.NoError(t, err)
	for _, s := range day.Slots {
		if s.Value == "10" {
			assert.False(t, s.Available, "booked slot must show unavailable")
		} else {
			assert.True(t, s.Available, "slot %s", s.Value)
		}
	}
}

func TestService_CreateAbortsWhenSlotJustTaken(t *testing.T) {
	backend := &fakeBackend{occupied: []domain.OccupiedSlot{
		{ReservationDate: "2025-04-01T00:00:00Z", ReservationTime: "10:00:00"},
	}}
	svc, _ := newTestService(t, backend.handler())

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		Date: "2025-04-01", Hour: "10", PitchID: 5, UserID: 7,
	})
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, backend.creates, "submission must be aborted before the create call")
}

func TestService_CreateRequiresSelection(t *testing.T) {
	svc, _ := newTestService(t, http.NewServeMux())

	_, err := svc.Create(context.Background(), CreateReservationRequest{Date: "2025-04-01"})
	require.ErrorIs(t, err, ErrMissingSelection)
}

func TestService_CreateSendsRawClientStatus(t *testing.T) {
	var sentStatus string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations/findOccupiedSlotsByPitch/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/api/reservations/add", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		sentStatus, _ = body["status"].(string)
		w.Write([]byte(`{"id":1,"status":"pendiente"}`))
	})
	svc, _ := newTestService(t, mux)

	res, err := svc.Create(context.Background(), CreateReservationRequest{
		Date: "2025-04-01", Hour: "09", PitchID: 1, UserID: 2,
	})
	require.NoError(t, err)
	// Create sends the raw enum value; the response label is translated back.
	assert.Equal(t, "pending", sentStatus)
	assert.Equal(t, domain.StatusPending, res.Status)
}

func TestService_UpdateStatusSendsBackendLabel(t *testing.T) {
	var sentStatus string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations/update/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		sentStatus = body["status"]
		w.Write([]byte(`{"id":3,"status":"cancelada"}`))
	})
	svc, _ := newTestService(t, mux)

	res, err := svc.UpdateStatus(context.Background(), 3, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, "cancelada", sentStatus)
	assert.Equal(t, domain.StatusCancelled, res.Status)
}

func TestService_BackendConflictMapsToSlotTaken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations/findOccupiedSlotsByPitch/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/api/reservations/add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"slot already reserved"}`))
	})
	svc, _ := newTestService(t, mux)

	_, err := svc.Create(context.Background(), CreateReservationRequest{
		Date: "2025-04-01", Hour: "09", PitchID: 1, UserID: 2,
	})
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestService_FindAllFromUserTranslatesStatuses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/reservations/findAllFromUser/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reservations":[
			{"id":1,"status":"pendiente"},
			{"id":2,"status":"en curso"},
			{"id":3,"status":"completada"},
			{"id":4,"status":"algo raro"}
		]}`))
	})
	svc, _ := newTestService(t, mux)

	res, err := svc.FindAllFromUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, domain.StatusPending, res[0].Status)
	assert.Equal(t, domain.StatusConfirmed, res[1].Status)
	assert.Equal(t, domain.StatusCompleted, res[2].Status)
	assert.Equal(t, domain.ReservationStatus("algo raro"), res[3].Status, "unknown label passes through")
}

func TestService_OccupiedSlots404IsEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.Contains(r.URL.Path, "findOccupiedSlotsByPitch"))
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"none"}`))
	})
	svc, _ := newTestService(t, mux)

	slots, err := svc.OccupiedSlots(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
