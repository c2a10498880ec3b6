package entity

import "time"

// MinEventParticipants is the smallest allowed capacity: an event with a
// single participant is a workout, not a club event.
const MinEventParticipants = 2

type Event struct {
	ID              string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ClubID          string `gorm:"not null;type:uuid;index"`
	Name            string `gorm:"not null"`
	Location        string `gorm:"not null"`
	LocationName    string `gorm:"not null"`
	StartsAt        time.Time `gorm:"not null"`
	EndsAt          time.Time `gorm:"not null"`
	MaxParticipants int       `gorm:"not null;default:10"`
	HasWaitlist     bool      `gorm:"not null;default:false"`
}

func (e *Event) Upcoming(now time.Time) bool {
	return e.StartsAt.After(now)
}

// Full reports whether the confirmed headcount has reached capacity.
// The count is passed in because it lives in the registrations table;
// callers must obtain it under whatever isolation they need.
func (e *Event) Full(confirmed int64) bool {
	return confirmed >= int64(e.MaxParticipants)
}

func (e *Event) AvailableSpots(confirmed int64) int {
	spots := e.MaxParticipants - int(confirmed)
	if spots < 0 {
		return 0
	}
	return spots
}
