package service

import (
	"context"
	"errors"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

type MembershipStorage interface {
	Create(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
	Get(ctx context.Context, id string) (*entity.Membership, error)
	GetByUserAndClub(ctx context.Context, userID, clubID string) (*entity.Membership, error)
	Update(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
	Delete(ctx context.Context, id string) error
	GetMembersByClubID(ctx context.Context, clubID string) ([]dto.ClubMember, error)
	CountByClubIDAndStatus(ctx context.Context, clubID string, status entity.MembershipStatus) (int64, error)
}

type membershipClubStorage interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

type membershipUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

// membershipNotifier delivers the approval notification. Implementations
// must not block the caller and must swallow delivery failures; an
// undelivered email never rolls back an approval.
type membershipNotifier interface {
	SendMembershipApproved(to, firstName, clubName string)
}

type MembershipService struct {
	storage     MembershipStorage
	clubStorage membershipClubStorage
	userStorage membershipUserStorage
	notifier    membershipNotifier
}

func NewMembershipService(
	storage MembershipStorage,
	clubStorage membershipClubStorage,
	userStorage membershipUserStorage,
	notifier membershipNotifier,
) *MembershipService {
	return &MembershipService{
		storage:     storage,
		clubStorage: clubStorage,
		userStorage: userStorage,
		notifier:    notifier,
	}
}

// RequestJoin creates a membership for userID in the club. Public clubs
// admit immediately; private clubs leave the row pending until the owner
// approves. Owners cannot join their own club, and any existing row,
// whatever its status, blocks a new request.
func (s *MembershipService) RequestJoin(ctx context.Context, userID, clubID string) (*entity.Membership, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club.IsOwner(userID) {
		return nil, errorz.ErrOwnerMembership
	}

	if _, err = s.storage.GetByUserAndClub(ctx, userID, clubID); err == nil {
		return nil, errorz.ErrAlreadyMember
	} else if !errors.Is(err, errorz.ErrNotFound) {
		return nil, err
	}

	status := entity.MembershipPending
	if club.Public {
		status = entity.MembershipActive
	}

	return s.storage.Create(ctx, &entity.Membership{
		UserID: userID,
		ClubID: clubID,
		Status: status,
		Role:   entity.RoleMember,
	})
}

// Approve moves a pending membership to active and notifies the member.
func (s *MembershipService) Approve(ctx context.Context, actorID, clubID, membershipID string) (*entity.Membership, error) {
	membership, club, err := s.ownedMembership(ctx, actorID, clubID, membershipID)
	if err != nil {
		return nil, err
	}

	membership.Status = entity.MembershipActive
	membership, err = s.storage.Update(ctx, membership)
	if err != nil {
		return nil, err
	}

	if user, userErr := s.userStorage.Get(ctx, membership.UserID); userErr == nil {
		s.notifier.SendMembershipApproved(user.Email, user.FirstName, club.Name)
	}

	return membership, nil
}

// Enable re-activates a membership. Enabling one that is already active
// is a no-op success.
func (s *MembershipService) Enable(ctx context.Context, actorID, clubID, membershipID string) (*entity.Membership, error) {
	return s.setStatus(ctx, actorID, clubID, membershipID, entity.MembershipActive)
}

// Disable suspends a membership. Disabling one that is already disabled
// is a no-op success.
func (s *MembershipService) Disable(ctx context.Context, actorID, clubID, membershipID string) (*entity.Membership, error) {
	return s.setStatus(ctx, actorID, clubID, membershipID, entity.MembershipDisabled)
}

func (s *MembershipService) setStatus(ctx context.Context, actorID, clubID, membershipID string, status entity.MembershipStatus) (*entity.Membership, error) {
	membership, _, err := s.ownedMembership(ctx, actorID, clubID, membershipID)
	if err != nil {
		return nil, err
	}
	if membership.Status == status {
		return membership, nil
	}
	membership.Status = status
	return s.storage.Update(ctx, membership)
}

// Leave deletes the caller's own membership row.
func (s *MembershipService) Leave(ctx context.Context, userID, clubID string) error {
	membership, err := s.storage.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return errorz.ErrNotAMember
		}
		return err
	}
	return s.storage.Delete(ctx, membership.ID)
}

// Remove lets the club owner delete any membership row.
func (s *MembershipService) Remove(ctx context.Context, actorID, clubID, membershipID string) error {
	membership, _, err := s.ownedMembership(ctx, actorID, clubID, membershipID)
	if err != nil {
		return err
	}
	return s.storage.Delete(ctx, membership.ID)
}

// IsActiveMember reports whether userID holds an active membership in
// the club. Anonymous users and missing rows are simply false.
func (s *MembershipService) IsActiveMember(ctx context.Context, userID, clubID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	membership, err := s.storage.GetByUserAndClub(ctx, userID, clubID)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return membership.IsActive(), nil
}

// CanJoin reports whether a join request from userID would be accepted.
// Any existing row blocks, so a disabled member stays locked out until
// the owner re-enables or removes them.
func (s *MembershipService) CanJoin(ctx context.Context, userID, clubID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return false, err
	}
	if club.IsOwner(userID) {
		return false, nil
	}
	if _, err = s.storage.GetByUserAndClub(ctx, userID, clubID); err == nil {
		return false, nil
	} else if !errors.Is(err, errorz.ErrNotFound) {
		return false, err
	}
	return true, nil
}

// ActiveMemberCount is the member counter shown on the club page.
// Pending and disabled rows don't count.
func (s *MembershipService) ActiveMemberCount(ctx context.Context, clubID string) (int64, error) {
	return s.storage.CountByClubIDAndStatus(ctx, clubID, entity.MembershipActive)
}

// Members returns the owner-facing member list.
func (s *MembershipService) Members(ctx context.Context, actorID, clubID string) ([]dto.ClubMember, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, errorz.ErrForbidden
	}
	return s.storage.GetMembersByClubID(ctx, clubID)
}

// ownedMembership loads a membership and verifies that it belongs to the
// club and that the actor owns that club.
func (s *MembershipService) ownedMembership(ctx context.Context, actorID, clubID, membershipID string) (*entity.Membership, *entity.Club, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}
	if !club.IsOwner(actorID) {
		return nil, nil, errorz.ErrForbidden
	}
	membership, err := s.storage.Get(ctx, membershipID)
	if err != nil {
		return nil, nil, err
	}
	if membership.ClubID != clubID {
		return nil, nil, errorz.ErrNotFound
	}
	return membership, club, nil
}
