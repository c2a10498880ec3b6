package entity

import "time"

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipActive   MembershipStatus = "active"
	MembershipDisabled MembershipStatus = "disabled"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipActive, MembershipDisabled:
		return true
	}
	return false
}

type MembershipRole string

// Single role today; modeled as an enum so new roles don't need a schema change.
const RoleMember MembershipRole = "member"

func (r MembershipRole) Valid() bool {
	return r == RoleMember
}

type Membership struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string           `gorm:"not null;type:uuid;uniqueIndex:idx_memberships_user_club"`
	ClubID    string           `gorm:"not null;type:uuid;uniqueIndex:idx_memberships_user_club;index"`
	Status    MembershipStatus `gorm:"not null;type:varchar(16)"`
	Role      MembershipRole   `gorm:"not null;type:varchar(16);default:'member'"`
}

func (m *Membership) IsActive() bool {
	return m.Status == MembershipActive
}
