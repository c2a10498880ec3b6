package service

import (
	"context"
	"errors"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

// EventRegistrationStorage is the registration ledger. Register must be
// atomic per event: the capacity check and the insert happen under a
// lock on the event row so two racing requests cannot both take the
// last confirmed seat.
type EventRegistrationStorage interface {
	Register(ctx context.Context, eventID, userID string) (*entity.EventRegistration, error)
	Get(ctx context.Context, id string) (*entity.EventRegistration, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.EventRegistration, error)
	Update(ctx context.Context, registration *entity.EventRegistration) (*entity.EventRegistration, error)
	Delete(ctx context.Context, id string) error
	GetRegistrantsByEventID(ctx context.Context, eventID string) ([]dto.EventRegistrant, error)
	CountByEventIDAndStatus(ctx context.Context, eventID string, status entity.RegistrationStatus) (int64, error)
}

type registrationEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type registrationClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

type registrationMembershipStorage interface {
	GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Membership, error)
}

type EventRegistrationService struct {
	storage           EventRegistrationStorage
	eventStorage      registrationEventStorage
	clubStorage       registrationClubStorage
	membershipStorage registrationMembershipStorage
}

func NewEventRegistrationService(
	storage EventRegistrationStorage,
	eventStorage registrationEventStorage,
	clubStorage registrationClubStorage,
	membershipStorage registrationMembershipStorage,
) *EventRegistrationService {
	return &EventRegistrationService{
		storage:           storage,
		eventStorage:      eventStorage,
		clubStorage:       clubStorage,
		membershipStorage: membershipStorage,
	}
}

// Register signs userID up for the event. Two eligibility rules apply
// independently: the organizer is barred outright, and everyone else
// must hold an active membership in the event's club. The capacity
// decision itself (confirmed, waitlist, or full) runs atomically inside
// the storage layer.
func (s *EventRegistrationService) Register(ctx context.Context, userID, eventID string) (*entity.EventRegistration, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}

	if club.IsOwner(userID) {
		return nil, errorz.ErrOwnerRegistration
	}
	active, err := s.activeMember(ctx, userID, club.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errorz.ErrMembersOnly
	}

	return s.storage.Register(ctx, eventID, userID)
}

// Cancel deletes a registration row. The club owner may remove anyone;
// other callers may only remove their own row, and a row they do not
// own looks exactly like a missing one.
func (s *EventRegistrationService) Cancel(ctx context.Context, actorID, eventID, registrationID string) error {
	registration, event, err := s.eventRegistration(ctx, eventID, registrationID)
	if err != nil {
		return err
	}
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return err
	}

	if !club.IsOwner(actorID) && registration.UserID != actorID {
		return errorz.ErrNotFound
	}

	// Freeing a confirmed seat does not promote anyone from the
	// waitlist; promotion is an explicit owner approval.
	return s.storage.Delete(ctx, registration.ID)
}

// Approve confirms a registration, waitlisted or not. This is the owner
// override: no capacity re-check is made, so the owner can deliberately
// confirm past max_participants. Membership is not exempt, though: the
// registrant must still hold an active membership at approval time.
func (s *EventRegistrationService) Approve(ctx context.Context, actorID, eventID, registrationID string) (*entity.EventRegistration, error) {
	registration, event, err := s.eventRegistration(ctx, eventID, registrationID)
	if err != nil {
		return nil, err
	}
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}

	active, err := s.activeMember(ctx, registration.UserID, club.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errorz.ErrMembersOnly
	}

	if registration.Status == entity.RegistrationConfirmed {
		return registration, nil
	}
	registration.Status = entity.RegistrationConfirmed
	return s.storage.Update(ctx, registration)
}

// Registrants returns the owner-facing registration list.
func (s *EventRegistrationService) Registrants(ctx context.Context, actorID, eventID string) ([]dto.EventRegistrant, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	club, err := s.clubStorage.Get(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}
	return s.storage.GetRegistrantsByEventID(ctx, eventID)
}

// StatusFor returns the user's registration status for the event, or nil
// when no row exists.
func (s *EventRegistrationService) StatusFor(ctx context.Context, userID, eventID string) (*entity.RegistrationStatus, error) {
	registration, err := s.storage.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration.Status, nil
}

func (s *EventRegistrationService) eventRegistration(ctx context.Context, eventID, registrationID string) (*entity.EventRegistration, *entity.Event, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}
	registration, err := s.storage.Get(ctx, registrationID)
	if err != nil {
		return nil, nil, err
	}
	if registration.EventID != eventID {
		return nil, nil, errorz.ErrNotFound
	}
	return registration, event, nil
}

func (s *EventRegistrationService) activeMember(ctx context.Context, userID, clubID string) (bool, error) {
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
