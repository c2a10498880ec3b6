package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type EventRegistrationStorage struct {
	db *gorm.DB
}

func NewEventRegistrationStorage(db *gorm.DB) *EventRegistrationStorage {
	return &EventRegistrationStorage{
		db: db,
	}
}

// Register creates a registration with the capacity decision made
// atomically: the event row is locked FOR UPDATE, so the confirmed
// count cannot change between the check and the insert. Two racing
// requests for the last seat serialize on the lock; the loser lands on
// the waitlist or gets ErrEventFull. The (user_id, event_id) unique
// index backs the duplicate check against races from other paths.
func (s *EventRegistrationStorage) Register(ctx context.Context, eventID, userID string) (*entity.EventRegistration, error) {
	var registration *entity.EventRegistration

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event entity.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).First(&event).Error; err != nil {
			return translate(err)
		}

		var existing int64
		if err := tx.Model(&entity.EventRegistration{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errorz.ErrAlreadyRegistered
		}

		var confirmed int64
		if err := tx.Model(&entity.EventRegistration{}).
			Where("event_id = ? AND status = ?", eventID, entity.RegistrationConfirmed).
			Count(&confirmed).Error; err != nil {
			return err
		}

		status, err := entity.DecideRegistrationStatus(&event, confirmed)
		if err != nil {
			return err
		}

		registration = &entity.EventRegistration{
			EventID: eventID,
			UserID:  userID,
			Status:  status,
		}
		if err = tx.Create(registration).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errorz.ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

// Get is a function that gets an event registration from the database by id.
func (s *EventRegistrationStorage) Get(ctx context.Context, id string) (*entity.EventRegistration, error) {
	var registration entity.EventRegistration
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&registration).Error
	return &registration, translate(err)
}

func (s *EventRegistrationStorage) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.EventRegistration, error) {
	var registration entity.EventRegistration
	err := s.db.WithContext(ctx).Where("user_id = ? AND event_id = ?", userID, eventID).First(&registration).Error
	return &registration, translate(err)
}

// Update is a function that updates an event registration in the database.
func (s *EventRegistrationStorage) Update(ctx context.Context, registration *entity.EventRegistration) (*entity.EventRegistration, error) {
	err := s.db.WithContext(ctx).Save(&registration).Error
	return registration, err
}

// Delete is a function that deletes an event registration from the database.
func (s *EventRegistrationStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.EventRegistration{}).Error
}

// GetRegistrantsByEventID returns the event's registrations joined with
// user identity, confirmed first, oldest first within a status.
func (s *EventRegistrationStorage) GetRegistrantsByEventID(ctx context.Context, eventID string) ([]dto.EventRegistrant, error) {
	var registrants []dto.EventRegistrant
	err := s.db.WithContext(ctx).
		Model(&entity.EventRegistration{}).
		Select(`event_registrations.id AS registration_id,
			users.id AS user_id,
			users.first_name,
			users.last_name,
			users.email,
			event_registrations.status,
			event_registrations.created_at AS registered_at`).
		Joins("JOIN users ON users.id = event_registrations.user_id").
		Where("event_registrations.event_id = ?", eventID).
		Order("event_registrations.status ASC, event_registrations.created_at ASC").
		Scan(&registrants).Error
	return registrants, err
}

// CountByEventIDAndStatus is a function that counts registrations for an event by status.
func (s *EventRegistrationStorage) CountByEventIDAndStatus(ctx context.Context, eventID string, status entity.RegistrationStatus) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.EventRegistration{}).
		Where("event_id = ? AND status = ?", eventID, status).
		Count(&count).Error
	return count, err
}
