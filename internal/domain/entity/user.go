package entity

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string `gorm:"not null;uniqueIndex"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Admin        bool   `gorm:"not null;default:false"`

	// Optional links to external athlete profiles.
	StravaURL     string
	TrailforksURL string
	OutsideURL    string
	AthlinksURL   string
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

var (
	stravaUsernameRe     = regexp.MustCompile(`/(athletes|pros)/([^/]+)`)
	trailforksUsernameRe = regexp.MustCompile(`/profile/([^/]+)`)
	athlinksUsernameRe   = regexp.MustCompile(`/athletes/([^/]+)`)
)

// StravaUsername extracts the athlete identifier from the Strava profile URL.
func (u *User) StravaUsername() string {
	if u.StravaURL == "" {
		return ""
	}
	m := stravaUsernameRe.FindStringSubmatch(u.StravaURL)
	if m == nil {
		return ""
	}
	return m[2]
}

func (u *User) TrailforksUsername() string {
	if u.TrailforksURL == "" {
		return ""
	}
	m := trailforksUsernameRe.FindStringSubmatch(u.TrailforksURL)
	if m == nil {
		return ""
	}
	return strings.TrimSuffix(m[1], "/")
}

// OutsideUsername takes the last path segment of the Outside profile URL.
func (u *User) OutsideUsername() string {
	if u.OutsideURL == "" {
		return ""
	}
	parsed, err := url.Parse(u.OutsideURL)
	if err != nil {
		return ""
	}
	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

func (u *User) AthlinksUsername() string {
	if u.AthlinksURL == "" {
		return ""
	}
	m := athlinksUsernameRe.FindStringSubmatch(u.AthlinksURL)
	if m == nil {
		return ""
	}
	return m[1]
}
