package validator

import (
	"strings"
	"unicode/utf8"
)

func ClubName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= 100
}

func ClubDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}

func ClubRules(rules string) bool {
	return strings.TrimSpace(rules) != ""
}

func ClubCategory(category string) bool {
	return strings.TrimSpace(category) != ""
}

// ClubLevels requires at least one non-blank level.
func ClubLevels(levels []string) bool {
	for _, level := range levels {
		if strings.TrimSpace(level) != "" {
			return true
		}
	}
	return false
}
