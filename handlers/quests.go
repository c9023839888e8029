// handlers/quests.go - Quest CRUD and completion orchestration
package handlers

import (
	"errors"
	"strconv"
	"time"

	"taskmon/database"
	"taskmon/middleware"
	"taskmon/models"
	"taskmon/services"
	"taskmon/utils"

	"github.com/gofiber/fiber/v2"
)

type CreateQuestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Type        string `json:"type"`
	RewardXP    int    `json:"reward_xp"`
	DueAt       string `json:"due_at"`
}

type UpdateQuestRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty"`
	Type        *string `json:"type"`
	RewardXP    *int    `json:"reward_xp"`
	DueAt       *string `json:"due_at"`
}

// GetQuests returns the user's quest list together with log stats.
// GET /api/quests
func GetQuests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	quests, err := questService.GetQuests(userID)
	if err != nil {
		return serviceError(c, err)
	}

	stats, err := questService.GetQuestStats(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"quests":  quests,
		"stats":   stats,
	})
}

// CreateQuest creates a new open quest.
// POST /api/quests
func CreateQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CreateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validateQuestFields(req.Title, req.Description, req.Difficulty, req.Type, req.RewardXP); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dueAt, err := parseDueAt(req.DueAt)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date"})
	}

	quest, err := questService.CreateQuest(userID, services.CreateQuestInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Type:        req.Type,
		RewardXP:    req.RewardXP,
		DueAt:       dueAt,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Quest created successfully",
		"quest":   quest,
	})
}

// GetQuest returns a single quest.
// GET /api/quests/:id
func GetQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quest ID"})
	}

	quest, err := questService.GetQuest(questID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "quest": quest})
}

// UpdateQuest applies a partial update to an open quest.
// PATCH /api/quests/:id
func UpdateQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quest ID"})
	}

	var req UpdateQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	input := services.UpdateQuestInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Type:        req.Type,
		RewardXP:    req.RewardXP,
	}

	if req.Title != nil {
		if err := utils.ValidateQuestTitle(*req.Title); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if req.Description != nil {
		if err := utils.ValidateQuestDescription(*req.Description); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if req.Difficulty != nil {
		if err := utils.ValidateQuestDifficulty(*req.Difficulty); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if req.Type != nil {
		if err := utils.ValidateQuestType(*req.Type); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if req.RewardXP != nil {
		if err := utils.ValidateRewardXP(*req.RewardXP); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if req.DueAt != nil {
		dueAt, err := parseDueAt(*req.DueAt)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid due date"})
		}
		input.DueAt = dueAt
	}

	quest, err := questService.UpdateQuest(questID, userID, input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quest updated successfully",
		"quest":   quest,
	})
}

// DeleteQuest removes a quest.
// DELETE /api/quests/:id
func DeleteQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quest ID"})
	}

	if err := questService.DeleteQuest(questID, userID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quest deleted successfully",
	})
}

// CompleteQuest finishes a quest, feeds the XP downstream into the active
// monster, re-checks achievements, and pushes realtime notifications.
// POST /api/quests/:id/complete
func CompleteQuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	questID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quest ID"})
	}

	result, err := questService.CompleteQuest(questID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	// The reward also feeds the active monster. A user without one (only
	// possible after an admin cleanup) simply skips this step.
	var monster *models.Monster
	monsterEvolved := false
	xpResult, err := monsterService.UpdateMonsterXP(userID, result.XPGained)
	if err != nil && !errors.Is(err, services.ErrNoActiveMonster) {
		return serviceError(c, err)
	}
	if xpResult != nil {
		monster = xpResult.Monster
		monsterEvolved = xpResult.Evolved
	}

	newAchievements, err := achievementService.CheckAllAchievements(userID)
	if err != nil {
		return serviceError(c, err)
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return serviceError(c, err)
	}

	EmitToUser(userID, "quest:completed", fiber.Map{
		"quest_id":          result.Quest.ID,
		"xp_gained":         result.XPGained,
		"new_level":         result.NewLevel,
		"monster_evolution": monsterEvolved,
	})
	for _, unlocked := range newAchievements {
		EmitToUser(userID, "achievement:unlocked", fiber.Map{
			"slug":        unlocked.Slug,
			"title":       unlocked.Title,
			"description": unlocked.Description,
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"message":          "Quest completed successfully",
		"quest":            result.Quest,
		"xp_gained":        result.XPGained,
		"new_level":        result.NewLevel,
		"level_up":         result.LevelUp,
		"monster":          monster,
		"monster_evolved":  monsterEvolved,
		"new_achievements": newAchievements,
		"user":             user,
	})
}

func validateQuestFields(title, description, difficulty, questType string, rewardXP int) error {
	if err := utils.ValidateQuestTitle(title); err != nil {
		return err
	}
	if err := utils.ValidateQuestDescription(description); err != nil {
		return err
	}
	if err := utils.ValidateQuestDifficulty(difficulty); err != nil {
		return err
	}
	if err := utils.ValidateQuestType(questType); err != nil {
		return err
	}
	return utils.ValidateRewardXP(rewardXP)
}

// parseDueAt turns an optional RFC 3339 string into a timestamp. Empty
// strings mean no due date.
func parseDueAt(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
