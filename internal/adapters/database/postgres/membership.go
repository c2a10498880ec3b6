package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type MembershipStorage struct {
	db *gorm.DB
}

func NewMembershipStorage(db *gorm.DB) *MembershipStorage {
	return &MembershipStorage{
		db: db,
	}
}

// Create inserts a membership row. The (user_id, club_id) unique index
// backs the one-row-per-pair invariant at the storage layer.
func (s *MembershipStorage) Create(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	err := s.db.WithContext(ctx).Create(&membership).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errorz.ErrAlreadyMember
	}
	return membership, err
}

// Get is a function that gets a membership from the database by id.
func (s *MembershipStorage) Get(ctx context.Context, id string) (*entity.Membership, error) {
	var membership entity.Membership
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&membership).Error
	return &membership, translate(err)
}

func (s *MembershipStorage) GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Membership, error) {
	var membership entity.Membership
	err := s.db.WithContext(ctx).Where("user_id = ? AND club_id = ?", userID, clubID).First(&membership).Error
	return &membership, translate(err)
}

// Update is a function that updates a membership in the database.
func (s *MembershipStorage) Update(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	err := s.db.WithContext(ctx).Save(&membership).Error
	return membership, err
}

// Delete is a function that deletes a membership from the database.
func (s *MembershipStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Membership{}).Error
}

// GetMembersByClubID returns the club's member list joined with user identity.
func (s *MembershipStorage) GetMembersByClubID(ctx context.Context, clubID string) ([]dto.ClubMember, error) {
	var members []dto.ClubMember
	err := s.db.WithContext(ctx).
		Model(&entity.Membership{}).
		Select(`memberships.id AS membership_id,
			users.id AS user_id,
			users.first_name,
			users.last_name,
			users.email,
			memberships.status,
			memberships.role,
			memberships.created_at AS joined_at`).
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("memberships.club_id = ?", clubID).
		Order("memberships.created_at ASC").
		Scan(&members).Error
	return members, err
}

// GetClubsByUserID returns the clubs the user holds a membership in.
func (s *MembershipStorage) GetClubsByUserID(ctx context.Context, userID string) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).
		Model(&entity.Club{}).
		Joins("JOIN memberships ON memberships.club_id = clubs.id").
		Where("memberships.user_id = ?", userID).
		Order("clubs.name ASC").
		Find(&clubs).Error
	return clubs, err
}

// CountByClubIDAndStatus is a function that counts memberships in a club by status.
func (s *MembershipStorage) CountByClubIDAndStatus(ctx context.Context, clubID string, status entity.MembershipStatus) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Membership{}).
		Where("club_id = ? AND status = ?", clubID, status).
		Count(&count).Error
	return count, err
}
