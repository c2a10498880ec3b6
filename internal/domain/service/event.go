package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
	"github.com/clubhub-app/clubhub/internal/domain/utils/validator"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
	GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error)
	GetUpcomingByClubID(ctx context.Context, clubID string, now time.Time) ([]entity.Event, error)
	GetPastByClubID(ctx context.Context, clubID string, now time.Time) ([]entity.Event, error)
	Count(ctx context.Context) (int64, error)
}

type eventClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

type eventRegistrationReader interface {
	CountByEventIDAndStatus(ctx context.Context, eventID string, status entity.RegistrationStatus) (int64, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.EventRegistration, error)
}

type eventMembershipReader interface {
	GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Membership, error)
}

type EventService struct {
	storage           EventStorage
	clubStorage       eventClubStorage
	registrations     eventRegistrationReader
	membershipStorage eventMembershipReader
}

func NewEventService(
	storage EventStorage,
	clubStorage eventClubStorage,
	registrations eventRegistrationReader,
	membershipStorage eventMembershipReader,
) *EventService {
	return &EventService{
		storage:           storage,
		clubStorage:       clubStorage,
		registrations:     registrations,
		membershipStorage: membershipStorage,
	}
}

// Create schedules a new event for the club. Owner-only. The start must
// be in the future at creation time; updates are not re-checked, so an
// event that has since started can still be edited.
func (s *EventService) Create(ctx context.Context, actorID string, event entity.Event) (*entity.Event, error) {
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}

	if err = validateEvent(&event); err != nil {
		return nil, err
	}
	if !validator.EventStartsInFuture(event.StartsAt, time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", errorz.ErrValidation)
	}

	event.ID = ""
	return s.storage.Create(ctx, &event)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.storage.Get(ctx, id)
}

// Detail returns the event with its capacity figures and the viewer's
// own registration status. Only club members and the owner may look at
// an event; everyone else gets ErrNotFound.
func (s *EventService) Detail(ctx context.Context, eventID, viewerID string) (*dto.EventDetail, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}

	if !club.IsOwner(viewerID) {
		member, memberErr := s.activeMember(ctx, viewerID, club.ID)
		if memberErr != nil {
			return nil, memberErr
		}
		if !member {
			return nil, errorz.ErrNotFound
		}
	}

	confirmed, err := s.registrations.CountByEventIDAndStatus(ctx, eventID, entity.RegistrationConfirmed)
	if err != nil {
		return nil, err
	}
	waitlisted, err := s.registrations.CountByEventIDAndStatus(ctx, eventID, entity.RegistrationWaitlist)
	if err != nil {
		return nil, err
	}

	var viewerStatus *entity.RegistrationStatus
	if viewerID != "" {
		if registration, regErr := s.registrations.GetByUserAndEvent(ctx, viewerID, eventID); regErr == nil {
			viewerStatus = &registration.Status
		} else if !errors.Is(regErr, errorz.ErrNotFound) {
			return nil, regErr
		}
	}

	detail := dto.NewEventDetail(*event, confirmed, waitlisted, viewerStatus)
	return &detail, nil
}

func (s *EventService) Update(ctx context.Context, actorID string, event entity.Event) (*entity.Event, error) {
	existing, err := s.storage.Get(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	club, err := s.clubStorage.Get(ctx, existing.ClubID)
	if err != nil {
		return nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}

	existing.Name = event.Name
	existing.Location = event.Location
	existing.LocationName = event.LocationName
	existing.StartsAt = event.StartsAt
	existing.EndsAt = event.EndsAt
	existing.MaxParticipants = event.MaxParticipants
	existing.HasWaitlist = event.HasWaitlist
	if err = validateEvent(existing); err != nil {
		return nil, err
	}
	return s.storage.Update(ctx, existing)
}

// Delete removes the event and its registrations in one transaction.
func (s *EventService) Delete(ctx context.Context, actorID, eventID string) error {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return err
	}
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return err
	}
	if !club.IsOwner(actorID) {
		return errorz.ErrForbidden
	}
	return s.storage.Delete(ctx, eventID)
}

// Upcoming lists the club's future events, soonest first.
func (s *EventService) Upcoming(ctx context.Context, clubID string) ([]entity.Event, error) {
	return s.storage.GetUpcomingByClubID(ctx, clubID, time.Now())
}

// Past lists the club's started events, most recent first.
func (s *EventService) Past(ctx context.Context, clubID string) ([]entity.Event, error) {
	return s.storage.GetPastByClubID(ctx, clubID, time.Now())
}

func (s *EventService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}

func (s *EventService) ConfirmedCount(ctx context.Context, eventID string) (int64, error) {
	return s.registrations.CountByEventIDAndStatus(ctx, eventID, entity.RegistrationConfirmed)
}

func (s *EventService) IsFull(ctx context.Context, eventID string) (bool, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return false, err
	}
	confirmed, err := s.ConfirmedCount(ctx, eventID)
	if err != nil {
		return false, err
	}
	return event.Full(confirmed), nil
}

func (s *EventService) AvailableSpots(ctx context.Context, eventID string) (int, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		return 0, err
	}
	confirmed, err := s.ConfirmedCount(ctx, eventID)
	if err != nil {
		return 0, err
	}
	return event.AvailableSpots(confirmed), nil
}

func (s *EventService) activeMember(ctx context.Context, userID, clubID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	membership, err := s.membershipStorage.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.IsActive(), nil
}

func validateEvent(event *entity.Event) error {
	if !validator.EventName(event.Name) {
		return fmt.Errorf("%w: event name is required", errorz.ErrValidation)
	}
	if !validator.EventLocation(event.Location) {
		return fmt.Errorf("%w: event location is required", errorz.ErrValidation)
	}
	if !validator.EventWindow(event.StartsAt, event.EndsAt) {
		return fmt.Errorf("%w: ends_at must be after starts_at", errorz.ErrValidation)
	}
	if !validator.EventMaxParticipants(event.MaxParticipants) {
		return fmt.Errorf("%w: max_participants must be at least %d", errorz.ErrValidation, entity.MinEventParticipants)
	}
	return nil
}
