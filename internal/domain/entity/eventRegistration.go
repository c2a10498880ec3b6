package entity

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
)

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationWaitlist  RegistrationStatus = "waitlist"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationConfirmed, RegistrationWaitlist:
		return true
	}
	return false
}

type EventRegistration struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string             `gorm:"not null;type:uuid;uniqueIndex:idx_event_registrations_user_event"`
	EventID   string             `gorm:"not null;type:uuid;uniqueIndex:idx_event_registrations_user_event;index"`
	Status    RegistrationStatus `gorm:"not null;type:varchar(16);default:'confirmed'"`
}

// DecideRegistrationStatus is the capacity decision for a new
// registration: a free seat confirms, a full event waitlists when the
// event allows it and rejects otherwise. It must run while the
// confirmed count cannot change, i.e. under the event row lock.
func DecideRegistrationStatus(event *Event, confirmed int64) (RegistrationStatus, error) {
	if !event.Full(confirmed) {
		return RegistrationConfirmed, nil
	}
	if event.HasWaitlist {
		return RegistrationWaitlist, nil
	}
	return "", errorz.ErrEventFull
}
