package entity

import (
	"time"

	"github.com/lib/pq"
)

type Club struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Description string
	Rules       string
	Category    string         `gorm:"not null"`
	Levels      pq.StringArray `gorm:"not null;type:text[]"`
	OwnerID     string         `gorm:"not null;type:uuid;index"`
	Public      bool           `gorm:"not null;default:false"`
	Active      bool           `gorm:"not null;default:true"`
}

// ClubFilter narrows the public catalog listing.
type ClubFilter struct {
	Query      string
	Category   string
	Level      string
	PublicOnly bool
}

// IsOwner reports whether userID owns the club. Anonymous callers
// (empty id) never own anything.
func (c *Club) IsOwner(userID string) bool {
	return userID != "" && c.OwnerID == userID
}

func (c *Club) Disabled() bool {
	return !c.Active
}

// VisibleTo reports whether the club may be shown to userID via the
// public show path. Disabled clubs are hidden from everyone, including
// the owner, who manages them through the owner-scoped endpoints instead.
func (c *Club) VisibleTo(userID string) bool {
	if c.Disabled() {
		return false
	}
	return c.Public || c.IsOwner(userID)
}

func (c *Club) HasLevel(level string) bool {
	for _, l := range c.Levels {
		if l == level {
			return true
		}
	}
	return false
}
