package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Success("reservation created")

	for _, ch := range []<-chan Notice{a, b} {
		select {
		case n := <-ch:
			assert.Equal(t, LevelSuccess, n.Level)
			assert.Equal(t, "reservation created", n.Message)
		default:
			t.Fatal("notice not delivered")
		}
	}
}

func TestBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()

	for i := 0; i < 100; i++ {
		bus.Info("tick")
	}

	// Buffer holds 16; the rest were dropped, none blocked.
	require.Len(t, ch, 16)
}
