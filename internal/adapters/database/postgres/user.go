package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type UserStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{
		db: db,
	}
}

// Create is a function that creates a new user in the database.
func (s *UserStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errorz.ErrEmailTaken
	}
	return user, err
}

// Get is a function that gets a user from the database by id.
func (s *UserStorage) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return &user, translate(err)
}

func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, translate(err)
}

// Update is a function that updates a user in the database.
func (s *UserStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Save(&user).Error
	return user, err
}

// Delete removes the user and everything they own: each owned club with
// its events, registrations, and memberships, plus the user's own
// memberships and registrations, all in one transaction.
func (s *UserStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownedClubIDs := tx.Model(&entity.Club{}).Select("id").Where("owner_id = ?", id)
		ownedEventIDs := tx.Model(&entity.Event{}).Select("id").Where("club_id IN (?)", ownedClubIDs)

		if err := tx.Where("event_id IN (?)", ownedEventIDs).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id IN (?)", ownedClubIDs).Delete(&entity.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id IN (?)", ownedClubIDs).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&entity.Club{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.User{}).Error
	})
}

// GetWithPagination is a function that gets a list of users from the database with pagination.
func (s *UserStorage) GetWithPagination(ctx context.Context, limit, offset int, order string) ([]entity.User, error) {
	var users []entity.User
	err := s.db.WithContext(ctx).Order(order).Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}

// Count is a function that gets the count of users from the database.
func (s *UserStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}
