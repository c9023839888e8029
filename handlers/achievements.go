// handlers/achievements.go - Achievement progress and reward claims
package handlers

import (
	"fmt"

	"taskmon/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetAchievementProgress returns the full achievements view: unlocked with
// rewards, next visible locked per category, totals, unclaimed.
// GET /api/achievements
func GetAchievementProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	progress, err := achievementService.GetAchievementProgress(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"unlocked":           progress.Unlocked,
		"locked":             progress.Locked,
		"total_unlocked":     progress.TotalUnlocked,
		"total_achievements": progress.TotalAchievements,
		"claimed_points":     progress.ClaimedPoints,
		"unclaimed":          progress.Unclaimed,
	})
}

// GetUnlockedAchievements returns only the unlock records.
// GET /api/achievements/unlocked
func GetUnlockedAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	achievements, err := achievementService.GetUserAchievements(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
	})
}

// ClaimAchievement collects the Monster Points reward for an unlocked
// achievement.
// POST /api/achievements/:achievementId/claim
func ClaimAchievement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	achievementID, err := parseID(c, "achievementId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid achievement ID"})
	}

	result, err := achievementService.ClaimAchievement(userID, achievementID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":                true,
		"achievement":            result.Achievement,
		"monster_points_awarded": result.MonsterPointsAwarded,
		"total_monster_points":   result.TotalMonsterPoints,
		"message":                fmt.Sprintf("Claimed %d Monster Points!", result.MonsterPointsAwarded),
	})
}

// CheckAchievements re-evaluates the catalog for the user on demand.
// POST /api/achievements/check
func CheckAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	newlyUnlocked, err := achievementService.CheckAllAchievements(userID)
	if err != nil {
		return serviceError(c, err)
	}

	for _, unlocked := range newlyUnlocked {
		EmitToUser(userID, "achievement:unlocked", fiber.Map{
			"slug":        unlocked.Slug,
			"title":       unlocked.Title,
			"description": unlocked.Description,
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"new_achievements": newlyUnlocked,
	})
}
