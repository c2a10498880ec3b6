package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Email(email string) bool {
	return emailRe.MatchString(email)
}

func Name(name string) bool {
	return strings.TrimSpace(name) != ""
}

func Password(password string) bool {
	return len(password) >= 8
}

// suspiciousURLRe rejects values that try to smuggle markup or script
// schemes into a profile link.
var suspiciousURLRe = regexp.MustCompile(`(?i)[<>"']|javascript:|data:|vbscript:|<script|on\w+=`)

// ProfileURL accepts an http(s) URL, optionally pinned to a host.
// Blank values are valid; the fields are optional.
func ProfileURL(raw, expectedHost string) bool {
	if raw == "" {
		return true
	}
	if suspiciousURLRe.MatchString(raw) {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if expectedHost != "" && parsed.Host != expectedHost {
		return false
	}
	return true
}

var stravaProfileRe = regexp.MustCompile(`^https://www\.strava\.com/(athletes|pros)/.+`)

func StravaURL(raw string) bool {
	if raw == "" {
		return true
	}
	return ProfileURL(raw, "www.strava.com") && stravaProfileRe.MatchString(raw)
}

func TrailforksURL(raw string) bool {
	if raw == "" {
		return true
	}
	return ProfileURL(raw, "www.trailforks.com") && strings.Contains(raw, "/profile/")
}
