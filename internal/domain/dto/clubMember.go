package dto

import (
	"time"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

// ClubMember is the owner-facing member list row: the membership joined
// with the member's identity.
type ClubMember struct {
	MembershipID string
	UserID       string
	FirstName    string
	LastName     string
	Email        string
	Status       entity.MembershipStatus
	Role         entity.MembershipRole
	JoinedAt     time.Time
}

func NewClubMember(membership entity.Membership, user entity.User) ClubMember {
	return ClubMember{
		MembershipID: membership.ID,
		UserID:       user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Status:       membership.Status,
		Role:         membership.Role,
		JoinedAt:     membership.CreatedAt,
	}
}
