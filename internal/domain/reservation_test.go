package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping_RoundTrip(t *testing.T) {
	for _, s := range []ReservationStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.Equal(t, s, StatusFromBackend(s.BackendLabel()), "round trip for %q", s)
	}
}

func TestStatusMapping_Labels(t *testing.T) {
	assert.Equal(t, "pendiente", StatusPending.BackendLabel())
	assert.Equal(t, "en curso", StatusConfirmed.BackendLabel())
	assert.Equal(t, "completada", StatusCompleted.BackendLabel())
	assert.Equal(t, "cancelada", StatusCancelled.BackendLabel())
}

func TestStatusMapping_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "no-show", ReservationStatus("no-show").BackendLabel())
	assert.Equal(t, ReservationStatus("no-show"), StatusFromBackend("no-show"))
}

func TestReservation_UnmarshalTranslatesStatus(t *testing.T) {
	var r Reservation
	err := json.Unmarshal([]byte(`{"id":4,"ReservationDate":"2025-03-10","ReservationTime":"14:00:00","pitch":7,"user":{"id":2,"name":"Ana"},"status":"en curso"}`), &r)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, r.Status)
	assert.Equal(t, int64(7), r.Pitch.ID)
	assert.Equal(t, int64(2), r.User.ID)
	assert.True(t, r.User.Embedded())
	assert.False(t, r.Pitch.Embedded())
}
