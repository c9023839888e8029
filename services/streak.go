// services/streak.go - Login streak tracking
package services

import (
	"time"

	"taskmon/models"

	"gorm.io/gorm"
)

// NextStreak computes the streak after a login at now. Logins on the same
// calendar day keep the streak, the next day extends it, and any gap resets
// it to 1.
func NextStreak(lastLogin, now time.Time, current int) int {
	today := startOfDay(now)
	lastDay := startOfDay(lastLogin)

	daysDiff := int(today.Sub(lastDay).Hours() / 24)

	switch {
	case daysDiff == 0:
		return current
	case daysDiff == 1:
		return current + 1
	default:
		return 1
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UpdateLoginStreak applies NextStreak to the user and stamps the login
// time. Returns the new streak value.
func UpdateLoginStreak(db *gorm.DB, userID uint) (int, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	now := time.Now()
	newStreak := NextStreak(user.LastLoginAt, now, user.Streak)

	// A brand-new account has a zero LastLoginAt; its first login starts
	// the streak at 1.
	if user.LastLoginAt.IsZero() {
		newStreak = 1
	}

	err := db.Model(&user).Updates(map[string]interface{}{
		"streak":        newStreak,
		"last_login_at": now,
	}).Error
	if err != nil {
		return 0, err
	}

	return newStreak, nil
}
