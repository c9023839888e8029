// services/errors.go - Stable service error vocabulary
package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// status codes with errors.Is; the message strings are part of the API
// contract and must stay stable.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")

	ErrQuestNotFound         = errors.New("quest not found")
	ErrQuestAlreadyCompleted = errors.New("quest already completed")

	ErrMonsterNotFound = errors.New("monster not found or does not belong to user")
	ErrNoActiveMonster = errors.New("no active monster found")

	ErrAchievementNotFound = errors.New("achievement not found")
	ErrAlreadyUnlocked     = errors.New("achievement already unlocked")
	ErrAlreadyClaimed      = errors.New("achievement already claimed")
)
