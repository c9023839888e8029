// handlers/handlers.go - Service wiring and shared error mapping
package handlers

import (
	"errors"

	"taskmon/database"
	"taskmon/services"

	"github.com/gofiber/fiber/v2"
)

var (
	questService       *services.QuestService
	monsterService     *services.MonsterService
	achievementService *services.AchievementService
)

// InitHandlers wires the service layer to the shared database handle. Must
// run after database.InitDB.
func InitHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}
	questService = services.NewQuestService(db)
	monsterService = services.NewMonsterService(db)
	achievementService = services.NewAchievementService(db)
}

// serviceError maps service sentinel errors to HTTP responses. Unknown
// errors become a generic 500 with no internal detail.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrQuestNotFound),
		errors.Is(err, services.ErrMonsterNotFound),
		errors.Is(err, services.ErrAchievementNotFound),
		errors.Is(err, services.ErrUserNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrQuestAlreadyCompleted),
		errors.Is(err, services.ErrAlreadyUnlocked),
		errors.Is(err, services.ErrAlreadyClaimed),
		errors.Is(err, services.ErrNoActiveMonster):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, services.ErrEmailTaken):
		status = fiber.StatusConflict
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
