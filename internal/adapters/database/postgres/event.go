package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create is a function that creates a new event in the database.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// Get is a function that gets an event from the database by id.
func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, translate(err)
}

// Update is a function that updates an event in the database.
func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Save(&event).Error
	return event, err
}

// Delete removes the event and its registrations in one transaction.
func (s *EventStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Event{}).Error
	})
}

func (s *EventStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("starts_at ASC").Find(&events).Error
	return events, err
}

// GetUpcomingByClubID returns the club's future events, soonest first.
func (s *EventStorage) GetUpcomingByClubID(ctx context.Context, clubID string, now time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND starts_at > ?", clubID, now).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

// GetPastByClubID returns the club's started events, most recent first.
func (s *EventStorage) GetPastByClubID(ctx context.Context, clubID string, now time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND starts_at <= ?", clubID, now).
		Order("starts_at DESC").
		Find(&events).Error
	return events, err
}

// Count is a function that gets the count of events from the database.
func (s *EventStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Event{}).Count(&count).Error
	return count, err
}
