// services/quest_service.go - Quest lifecycle and completion rewards
package services

import (
	"time"

	"taskmon/models"

	"gorm.io/gorm"
)

type QuestService struct {
	db *gorm.DB
}

func NewQuestService(db *gorm.DB) *QuestService {
	return &QuestService{db: db}
}

// CreateQuestInput carries the fields a user may set when creating a quest.
// Zero values fall back to the defaults (normal/normal/10 XP).
type CreateQuestInput struct {
	Title       string
	Description string
	Difficulty  string
	Type        string
	RewardXP    int
	DueAt       *time.Time
}

// UpdateQuestInput carries the optional fields of a quest PATCH. Nil
// pointers mean "leave unchanged".
type UpdateQuestInput struct {
	Title       *string
	Description *string
	Difficulty  *string
	Type        *string
	RewardXP    *int
	DueAt       *time.Time
}

// CompleteQuestResult is returned from CompleteQuest.
type CompleteQuestResult struct {
	Quest    *models.Quest `json:"quest"`
	XPGained int           `json:"xp_gained"`
	NewLevel int           `json:"new_level"`
	LevelUp  bool          `json:"level_up"`
}

// QuestStats summarizes a user's quest log.
type QuestStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Open      int64 `json:"open"`
	Overdue   int64 `json:"overdue"`
}

// CreateQuest creates an open quest for the user.
func (s *QuestService) CreateQuest(userID uint, input CreateQuestInput) (*models.Quest, error) {
	quest := &models.Quest{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Type:        input.Type,
		RewardXP:    input.RewardXP,
		DueAt:       input.DueAt,
		Status:      models.QuestStatusOpen,
	}

	if quest.Difficulty == "" {
		quest.Difficulty = models.QuestDifficultyNormal
	}
	if quest.Type == "" {
		quest.Type = models.QuestTypeNormal
	}
	if quest.RewardXP == 0 {
		quest.RewardXP = 10
	}

	if err := s.db.Create(quest).Error; err != nil {
		return nil, err
	}
	return quest, nil
}

// GetQuests returns the user's quests, open ones first, soonest due first,
// newest created first within that.
func (s *QuestService) GetQuests(userID uint) ([]models.Quest, error) {
	var quests []models.Quest
	// "open" sorts after "done", so descending puts open quests first.
	err := s.db.Where("user_id = ?", userID).
		Order("status desc").
		Order("due_at asc").
		Order("created_at desc").
		Find(&quests).Error
	return quests, err
}

// GetQuest returns a single quest scoped to the owning user.
func (s *QuestService) GetQuest(questID, userID uint) (*models.Quest, error) {
	var quest models.Quest
	err := s.db.Where("id = ? AND user_id = ?", questID, userID).First(&quest).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrQuestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

// UpdateQuest applies a partial update to a quest the user owns.
func (s *QuestService) UpdateQuest(questID, userID uint, input UpdateQuestInput) (*models.Quest, error) {
	quest, err := s.GetQuest(questID, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Difficulty != nil {
		updates["difficulty"] = *input.Difficulty
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.RewardXP != nil {
		updates["reward_xp"] = *input.RewardXP
	}
	if input.DueAt != nil {
		updates["due_at"] = *input.DueAt
	}

	if len(updates) == 0 {
		return quest, nil
	}

	if err := s.db.Model(quest).Updates(updates).Error; err != nil {
		return nil, err
	}
	return quest, nil
}

// DeleteQuest removes a quest the user owns.
func (s *QuestService) DeleteQuest(questID, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", questID, userID).Delete(&models.Quest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestNotFound
	}
	return nil
}

// CompleteQuest transitions a quest to done and awards its XP to the user.
// The quest status and the user's XP/level are written in one transaction
// so a failure leaves neither half applied.
func (s *QuestService) CompleteQuest(questID, userID uint) (*CompleteQuestResult, error) {
	quest, err := s.GetQuest(questID, userID)
	if err != nil {
		return nil, err
	}

	if quest.Status == models.QuestStatusDone {
		return nil, ErrQuestAlreadyCompleted
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	xpGained := quest.RewardXP
	newXP := user.XP + xpGained
	newLevel := CalculateLevel(newXP)
	levelUp := newLevel > user.Level

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(quest).Updates(map[string]interface{}{
			"status":       models.QuestStatusDone,
			"completed_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&user).Updates(map[string]interface{}{
			"xp":    newXP,
			"level": newLevel,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &CompleteQuestResult{
		Quest:    quest,
		XPGained: xpGained,
		NewLevel: newLevel,
		LevelUp:  levelUp,
	}, nil
}

// GetQuestStats returns quest log counts for the user. Overdue means still
// open with a due date in the past.
func (s *QuestService) GetQuestStats(userID uint) (*QuestStats, error) {
	stats := &QuestStats{}

	if err := s.db.Model(&models.Quest{}).
		Where("user_id = ?", userID).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Quest{}).
		Where("user_id = ? AND status = ?", userID, models.QuestStatusDone).
		Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Quest{}).
		Where("user_id = ? AND status = ?", userID, models.QuestStatusOpen).
		Count(&stats.Open).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Quest{}).
		Where("user_id = ? AND status = ? AND due_at IS NOT NULL AND due_at < ?",
			userID, models.QuestStatusOpen, time.Now()).
		Count(&stats.Overdue).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
