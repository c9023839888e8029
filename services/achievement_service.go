// services/achievement_service.go - Achievement unlock, claim, and progress
package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"taskmon/models"

	"gorm.io/gorm"
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// UserState aggregates the persisted values achievement conditions compare
// against. It is loaded once per evaluation pass.
type UserState struct {
	QuestsCompleted int
	Streak          int
	Level           int
	MonsterCount    int
	EvolvedMonsters int // monsters at stage >= 2
	DistinctSpecies int
}

// UnlockedAchievement is an unlock record annotated with its catalog entry.
type UnlockedAchievement struct {
	models.Achievement
	Title               string `json:"title"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	MonsterPointsReward int    `json:"monster_points_reward"`
}

// ClaimResult reports a successful reward claim.
type ClaimResult struct {
	Achievement          *models.Achievement `json:"achievement"`
	MonsterPointsAwarded int                 `json:"monster_points_awarded"`
	TotalMonsterPoints   int                 `json:"total_monster_points"`
}

// AchievementProgress is the full achievements view for a user.
type AchievementProgress struct {
	Unlocked          []UnlockedAchievement   `json:"unlocked"`
	Locked            []AchievementDefinition `json:"locked"`
	TotalUnlocked     int                     `json:"total_unlocked"`
	TotalAchievements int                     `json:"total_achievements"`
	ClaimedPoints     int                     `json:"claimed_points"`
	Unclaimed         []UnlockedAchievement   `json:"unclaimed"`
}

// GetUserAchievements returns the user's unlock records, newest first.
func (s *AchievementService) GetUserAchievements(userID uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&achievements).Error
	return achievements, err
}

// HasAchievement reports whether the user already unlocked the slug.
func (s *AchievementService) HasAchievement(userID uint, slug string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Achievement{}).
		Where("user_id = ? AND slug = ?", userID, slug).
		Count(&count).Error
	return count > 0, err
}

// UnlockAchievement creates the unlock record for a slug. The record starts
// unclaimed; the reward is collected separately via ClaimAchievement.
func (s *AchievementService) UnlockAchievement(userID uint, slug, meta string) (*models.Achievement, error) {
	unlocked, err := s.HasAchievement(userID, slug)
	if err != nil {
		return nil, err
	}
	if unlocked {
		return nil, ErrAlreadyUnlocked
	}

	achievement := &models.Achievement{
		UserID:   userID,
		Slug:     slug,
		EarnedAt: time.Now(),
		Meta:     meta,
		Claimed:  false,
	}
	if err := s.db.Create(achievement).Error; err != nil {
		return nil, err
	}
	return achievement, nil
}

// ClaimAchievement marks an unlock record claimed and credits the reward to
// the user's Monster Points, both in one transaction.
func (s *AchievementService) ClaimAchievement(userID, achievementID uint) (*ClaimResult, error) {
	var achievement models.Achievement
	err := s.db.Where("id = ? AND user_id = ?", achievementID, userID).First(&achievement).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrAchievementNotFound
	}
	if err != nil {
		return nil, err
	}

	if achievement.Claimed {
		return nil, ErrAlreadyClaimed
	}

	reward := 0
	if def, ok := GetAchievementDefinition(achievement.Slug); ok {
		reward = def.MonsterPointsReward
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&achievement).Update("claimed", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("monster_points", gorm.Expr("monster_points + ?", reward)).Error
	})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	achievement.Claimed = true
	return &ClaimResult{
		Achievement:          &achievement,
		MonsterPointsAwarded: reward,
		TotalMonsterPoints:   user.MonsterPoints,
	}, nil
}

// CheckAllAchievements evaluates the catalog against the user's current
// state and unlocks every condition that newly holds. Within a category the
// definitions are checked in Order, and a later definition is only
// considered once the one before it is unlocked. A failure on one definition
// is logged and ends that category's pass; other categories still run.
func (s *AchievementService) CheckAllAchievements(userID uint) ([]UnlockedAchievement, error) {
	state, err := s.loadUserState(userID)
	if err != nil {
		return nil, err
	}

	unlockedSlugs, err := s.unlockedSlugSet(userID)
	if err != nil {
		return nil, err
	}

	var newlyUnlocked []UnlockedAchievement
	for _, category := range catalogCategories() {
		for _, def := range catalogByCategory(category) {
			if unlockedSlugs[def.Slug] {
				continue
			}

			met, err := evaluateCondition(def, state)
			if err != nil {
				log.Printf("Error checking achievement %s: %v", def.Slug, err)
				break // gated successors are unreachable anyway
			}
			if !met {
				break // progressive gating: stop at the first locked milestone
			}

			record, err := s.UnlockAchievement(userID, def.Slug, "")
			if err != nil {
				log.Printf("Error unlocking achievement %s: %v", def.Slug, err)
				break
			}

			unlockedSlugs[def.Slug] = true
			newlyUnlocked = append(newlyUnlocked, annotate(*record, def))
		}
	}

	return newlyUnlocked, nil
}

// GetAchievementProgress returns the unlocked records (with rewards), the
// next visible locked definition per category, totals, and claim state.
func (s *AchievementService) GetAchievementProgress(userID uint) (*AchievementProgress, error) {
	records, err := s.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	unlockedSlugs := make(map[string]bool, len(records))
	for _, r := range records {
		unlockedSlugs[r.Slug] = true
	}

	progress := &AchievementProgress{
		Unlocked:          make([]UnlockedAchievement, 0, len(records)),
		Locked:            []AchievementDefinition{},
		TotalUnlocked:     len(records),
		TotalAchievements: len(AchievementCatalog),
		Unclaimed:         []UnlockedAchievement{},
	}

	for _, r := range records {
		def, _ := GetAchievementDefinition(r.Slug)
		annotated := annotate(r, def)
		progress.Unlocked = append(progress.Unlocked, annotated)
		if r.Claimed {
			progress.ClaimedPoints += def.MonsterPointsReward
		} else {
			progress.Unclaimed = append(progress.Unclaimed, annotated)
		}
	}

	// The single next locked definition per category, mirroring the gating
	// in CheckAllAchievements.
	for _, category := range catalogCategories() {
		for _, def := range catalogByCategory(category) {
			if !unlockedSlugs[def.Slug] {
				progress.Locked = append(progress.Locked, def)
				break
			}
		}
	}

	return progress, nil
}

// loadUserState gathers the aggregates conditions are evaluated against.
func (s *AchievementService) loadUserState(userID uint) (*UserState, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var questsCompleted int64
	if err := s.db.Model(&models.Quest{}).
		Where("user_id = ? AND status = ?", userID, models.QuestStatusDone).
		Count(&questsCompleted).Error; err != nil {
		return nil, err
	}

	var monsterCount int64
	if err := s.db.Model(&models.Monster{}).
		Where("owner_id = ?", userID).
		Count(&monsterCount).Error; err != nil {
		return nil, err
	}

	var evolvedMonsters int64
	if err := s.db.Model(&models.Monster{}).
		Where("owner_id = ? AND stage >= ?", userID, 2).
		Count(&evolvedMonsters).Error; err != nil {
		return nil, err
	}

	var distinctSpecies int64
	if err := s.db.Model(&models.Monster{}).
		Where("owner_id = ?", userID).
		Distinct("species").
		Count(&distinctSpecies).Error; err != nil {
		return nil, err
	}

	return &UserState{
		QuestsCompleted: int(questsCompleted),
		Streak:          user.Streak,
		Level:           user.Level,
		MonsterCount:    int(monsterCount),
		EvolvedMonsters: int(evolvedMonsters),
		DistinctSpecies: int(distinctSpecies),
	}, nil
}

func (s *AchievementService) unlockedSlugSet(userID uint) (map[string]bool, error) {
	var slugs []string
	if err := s.db.Model(&models.Achievement{}).
		Where("user_id = ?", userID).
		Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		set[slug] = true
	}
	return set, nil
}

// evaluateCondition interprets one declarative condition against the state.
func evaluateCondition(def AchievementDefinition, state *UserState) (bool, error) {
	switch def.Metric {
	case MetricQuestsCompleted:
		return state.QuestsCompleted >= def.Threshold, nil
	case MetricStreak:
		return state.Streak >= def.Threshold, nil
	case MetricLevel:
		return state.Level >= def.Threshold, nil
	case MetricEvolvedMonsters:
		return state.EvolvedMonsters >= def.Threshold, nil
	case MetricAllMonstersEvolved:
		return state.MonsterCount > 0 && state.EvolvedMonsters == state.MonsterCount, nil
	case MetricDistinctSpecies:
		return state.DistinctSpecies >= def.Threshold, nil
	default:
		return false, fmt.Errorf("unknown achievement metric %q", def.Metric)
	}
}

func annotate(record models.Achievement, def AchievementDefinition) UnlockedAchievement {
	return UnlockedAchievement{
		Achievement:         record,
		Title:               def.Title,
		Description:         def.Description,
		Category:            def.Category,
		MonsterPointsReward: def.MonsterPointsReward,
	}
}

// catalogCategories returns the category names in catalog declaration order.
func catalogCategories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, def := range AchievementCatalog {
		if !seen[def.Category] {
			seen[def.Category] = true
			categories = append(categories, def.Category)
		}
	}
	return categories
}

// catalogByCategory returns a category's definitions sorted by Order.
func catalogByCategory(category string) []AchievementDefinition {
	var defs []AchievementDefinition
	for _, def := range AchievementCatalog {
		if def.Category == category {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Order < defs[j].Order
	})
	return defs
}
