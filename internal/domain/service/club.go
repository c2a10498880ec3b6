package service

import (
	"context"
	"fmt"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
	"github.com/clubhub-app/clubhub/internal/domain/utils/validator"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
	GetByOwnerID(ctx context.Context, ownerID string) ([]entity.Club, error)
	Search(ctx context.Context, filter entity.ClubFilter, limit, offset int) ([]entity.Club, error)
	Count(ctx context.Context) (int64, error)
}

type clubMembershipStorage interface {
	GetClubsByUserID(ctx context.Context, userID string) ([]entity.Club, error)
}

type ClubService struct {
	storage           ClubStorage
	membershipStorage clubMembershipStorage
}

func NewClubService(storage ClubStorage, membershipStorage clubMembershipStorage) *ClubService {
	return &ClubService{
		storage:           storage,
		membershipStorage: membershipStorage,
	}
}

// Create registers a new club owned by ownerID. New clubs start active;
// visibility is whatever the owner asked for (private by default).
func (s *ClubService) Create(ctx context.Context, ownerID string, club entity.Club) (*entity.Club, error) {
	if err := validateClub(&club); err != nil {
		return nil, err
	}

	club.ID = ""
	club.OwnerID = ownerID
	club.Active = true
	return s.storage.Create(ctx, &club)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.storage.Get(ctx, id)
}

// GetVisible fetches a club through the public show path. Clubs that are
// disabled, or private and not owned by the viewer, come back as
// ErrNotFound so their existence is not leaked.
func (s *ClubService) GetVisible(ctx context.Context, id, viewerID string) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !club.VisibleTo(viewerID) {
		return nil, errorz.ErrNotFound
	}
	return club, nil
}

func (s *ClubService) Update(ctx context.Context, actorID string, club entity.Club) (*entity.Club, error) {
	existing, err := s.storage.Get(ctx, club.ID)
	if err != nil {
		return nil, err
	}
	if !existing.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}

	existing.Name = club.Name
	existing.Description = club.Description
	existing.Rules = club.Rules
	existing.Category = club.Category
	existing.Levels = club.Levels
	existing.Public = club.Public
	if err = validateClub(existing); err != nil {
		return nil, err
	}
	return s.storage.Update(ctx, existing)
}

func (s *ClubService) Enable(ctx context.Context, actorID, clubID string) (*entity.Club, error) {
	return s.setActive(ctx, actorID, clubID, true)
}

// Disable takes the club off the public surface. Existing memberships,
// events, and registrations are left untouched; re-enabling restores
// the club exactly as it was.
func (s *ClubService) Disable(ctx context.Context, actorID, clubID string) (*entity.Club, error) {
	return s.setActive(ctx, actorID, clubID, false)
}

func (s *ClubService) setActive(ctx context.Context, actorID, clubID string, active bool) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}
	if club.Active == active {
		return club, nil
	}
	club.Active = active
	return s.storage.Update(ctx, club)
}

// Delete removes the club and everything it owns: memberships, events,
// and their registrations go in the same transaction.
func (s *ClubService) Delete(ctx context.Context, actorID, clubID string) error {
	club, err := s.storage.Get(ctx, clubID)
	if err != nil {
		return err
	}
	if !club.IsOwner(actorID) {
		return errorz.ErrForbidden
	}
	return s.storage.Delete(ctx, clubID)
}

func (s *ClubService) Search(ctx context.Context, filter entity.ClubFilter, limit, offset int) ([]entity.Club, error) {
	return s.storage.Search(ctx, filter, limit, offset)
}

func (s *ClubService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}

// UserClubs lists the clubs a user owns and the clubs they belong to.
func (s *ClubService) UserClubs(ctx context.Context, userID string) (*dto.UserClubs, error) {
	owned, err := s.storage.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	member, err := s.membershipStorage.GetClubsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserClubs{Owned: owned, Member: member}, nil
}

func validateClub(club *entity.Club) error {
	if !validator.ClubName(club.Name) {
		return fmt.Errorf("%w: club name is required", errorz.ErrValidation)
	}
	if !validator.ClubDescription(club.Description) {
		return fmt.Errorf("%w: club description is required", errorz.ErrValidation)
	}
	if !validator.ClubRules(club.Rules) {
		return fmt.Errorf("%w: club rules are required", errorz.ErrValidation)
	}
	if !validator.ClubCategory(club.Category) {
		return fmt.Errorf("%w: club category is required", errorz.ErrValidation)
	}
	if !validator.ClubLevels(club.Levels) {
		return fmt.Errorf("%w: at least one level is required", errorz.ErrValidation)
	}
	return nil
}
