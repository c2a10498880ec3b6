package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventFull(t *testing.T) {
	event := &Event{MaxParticipants: 3}

	assert.False(t, event.Full(0))
	assert.False(t, event.Full(2))
	assert.True(t, event.Full(3))
	assert.True(t, event.Full(4))
}

func TestEventAvailableSpots(t *testing.T) {
	event := &Event{MaxParticipants: 3}

	assert.Equal(t, 3, event.AvailableSpots(0))
	assert.Equal(t, 1, event.AvailableSpots(2))
	assert.Equal(t, 0, event.AvailableSpots(3))
	// Owner approvals can push the confirmed count past capacity; spots
	// never go negative.
	assert.Equal(t, 0, event.AvailableSpots(5))
}

func TestEventUpcoming(t *testing.T) {
	now := time.Now()

	future := &Event{StartsAt: now.Add(time.Hour)}
	assert.True(t, future.Upcoming(now))

	started := &Event{StartsAt: now}
	assert.False(t, started.Upcoming(now))

	past := &Event{StartsAt: now.Add(-time.Hour)}
	assert.False(t, past.Upcoming(now))
}
