// utils/validate.go - Request field validation helpers
package utils

import (
	"fmt"
	"strings"
)

const (
	minPasswordLen    = 8
	maxTitleLen       = 100
	maxDescriptionLen = 500
	minDisplayNameLen = 2
	maxDisplayNameLen = 50
	maxRewardXP       = 1000
)

// ValidateEmail does a minimal sanity check; real verification belongs to
// an email round trip, not a regex.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minDisplayNameLen || len(name) > maxDisplayNameLen {
		return fmt.Errorf("display name must be %d-%d characters", minDisplayNameLen, maxDisplayNameLen)
	}
	return nil
}

func ValidateQuestTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must be at most %d characters", maxTitleLen)
	}
	return nil
}

func ValidateQuestDescription(description string) error {
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLen)
	}
	return nil
}

func ValidateQuestDifficulty(difficulty string) error {
	switch difficulty {
	case "", "easy", "normal", "hard":
		return nil
	}
	return fmt.Errorf("difficulty must be easy, normal, or hard")
}

func ValidateQuestType(questType string) error {
	switch questType {
	case "", "daily", "weekly", "normal":
		return nil
	}
	return fmt.Errorf("type must be daily, weekly, or normal")
}

func ValidateRewardXP(rewardXP int) error {
	// Zero is allowed; it falls back to the default reward on create.
	if rewardXP < 0 || rewardXP > maxRewardXP {
		return fmt.Errorf("reward XP must be between 0 and %d", maxRewardXP)
	}
	return nil
}
