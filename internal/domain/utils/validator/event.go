package validator

import (
	"strings"
	"time"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

func EventName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func EventLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

// EventWindow requires the end to be strictly after the start.
func EventWindow(startsAt, endsAt time.Time) bool {
	return endsAt.After(startsAt)
}

// EventStartsInFuture applies on creation only; updates may move an
// event into the past without error.
func EventStartsInFuture(startsAt, now time.Time) bool {
	return startsAt.After(now)
}

func EventMaxParticipants(max int) bool {
	return max >= entity.MinEventParticipants
}
