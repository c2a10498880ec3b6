package dto

import "github.com/clubhub-app/clubhub/internal/domain/entity"

// EventDetail carries an event together with its derived capacity
// figures and the viewer's own registration status, if any.
type EventDetail struct {
	Event          entity.Event
	ConfirmedCount int64
	WaitlistCount  int64
	AvailableSpots int
	Full           bool
	ViewerStatus   *entity.RegistrationStatus
}

func NewEventDetail(event entity.Event, confirmed, waitlisted int64, viewerStatus *entity.RegistrationStatus) EventDetail {
	return EventDetail{
		Event:          event,
		ConfirmedCount: confirmed,
		WaitlistCount:  waitlisted,
		AvailableSpots: event.AvailableSpots(confirmed),
		Full:           event.Full(confirmed),
		ViewerStatus:   viewerStatus,
	}
}
