package dto

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

// EventRegistrant is the owner-facing registration list row.
type EventRegistrant struct {
	RegistrationID string
	UserID         string
	FirstName      string
	LastName       string
	Email          string
	Status         entity.RegistrationStatus
	RegisteredAt   time.Time
}

func NewEventRegistrant(registration entity.EventRegistration, user entity.User) EventRegistrant {
	return EventRegistrant{
		RegistrationID: registration.ID,
		UserID:         user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Status:         registration.Status,
		RegisteredAt:   registration.CreatedAt,
	}
}
