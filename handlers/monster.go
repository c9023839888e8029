// handlers/monster.go - Monster status, feeding, and switching
package handlers

import (
	"taskmon/middleware"
	"taskmon/services"

	"github.com/gofiber/fiber/v2"
)

// GetMonster returns the active monster with lazy hunger decay applied and
// its evolution info.
// GET /api/monster
func GetMonster(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	status, err := monsterService.GetMonsterStatus(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"monster":        status.Monster,
		"hunger_decay":   status.HungerDecay,
		"evolution_info": services.GetEvolutionInfo(status.Monster.Stage),
	})
}

// FeedMonster feeds the active monster.
// POST /api/monster/feed
func FeedMonster(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	monster, err := monsterService.FeedMonster(userID)
	if err != nil {
		return serviceError(c, err)
	}

	EmitToUser(userID, "monster:fed", fiber.Map{
		"hunger": monster.Hunger,
		"mood":   monster.Mood,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Monster fed successfully",
		"monster": monster,
	})
}

// GetAllMonsters lists every monster the user owns plus the active one.
// GET /api/monster/all
func GetAllMonsters(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	monsters, err := monsterService.GetAllMonsters(userID)
	if err != nil {
		return serviceError(c, err)
	}

	active, err := monsterService.GetActiveMonster(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"monsters":       monsters,
		"active_monster": active,
	})
}

// SwitchMonster makes another owned monster the active one.
// POST /api/monster/switch/:monsterId
func SwitchMonster(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	monsterID, err := parseID(c, "monsterId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid monster ID"})
	}

	monster, err := monsterService.SwitchActiveMonster(userID, monsterID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Monster switched successfully",
		"monster": monster,
	})
}
