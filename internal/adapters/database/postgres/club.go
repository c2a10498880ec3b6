package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

// Create is a function that creates a new club in the database.
func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, err
}

// Get is a function that gets a club from the database by id.
func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	return &club, translate(err)
}

// Update is a function that updates a club in the database.
func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, err
}

// Delete removes the club together with its memberships, events, and
// event registrations in one transaction.
func (s *ClubStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eventIDs := tx.Model(&entity.Event{}).Select("id").Where("club_id = ?", id)

		if err := tx.Where("event_id IN (?)", eventIDs).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Club{}).Error
	})
}

func (s *ClubStorage) GetByOwnerID(ctx context.Context, ownerID string) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&clubs).Error
	return clubs, err
}

// Search is a function that gets clubs from the database matching the catalog filter.
func (s *ClubStorage) Search(ctx context.Context, filter entity.ClubFilter, limit, offset int) ([]entity.Club, error) {
	query := s.db.WithContext(ctx).Model(&entity.Club{})

	if filter.PublicOnly {
		query = query.Where("public = true AND active = true")
	}
	if filter.Query != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		query = query.Where("? = ANY(levels)", filter.Level)
	}

	var clubs []entity.Club
	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, err
}

// Count is a function that gets the count of clubs from the database.
func (s *ClubStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Club{}).Count(&count).Error
	return count, err
}
