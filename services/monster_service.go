// services/monster_service.go - Monster feeding, decay, and evolution
package services

import (
	"time"

	"taskmon/models"

	"gorm.io/gorm"
)

type MonsterService struct {
	db *gorm.DB
}

func NewMonsterService(db *gorm.DB) *MonsterService {
	return &MonsterService{db: db}
}

// MonsterStatus is the result of a lazy hunger-decay read.
type MonsterStatus struct {
	Monster     *models.Monster `json:"monster"`
	HungerDecay int             `json:"hunger_decay"`
}

// UpdateXPResult reports an XP grant and whether it crossed a stage
// threshold.
type UpdateXPResult struct {
	Monster *models.Monster `json:"monster"`
	Evolved bool            `json:"evolved"`
}

// GetActiveMonster returns the user's active monster, or nil if the user
// has none designated.
func (s *MonsterService) GetActiveMonster(userID uint) (*models.Monster, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.ActiveMonsterID == nil {
		return nil, nil
	}

	var monster models.Monster
	if err := s.db.First(&monster, *user.ActiveMonsterID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &monster, nil
}

// GetAllMonsters returns every monster the user owns, oldest first.
func (s *MonsterService) GetAllMonsters(userID uint) ([]models.Monster, error) {
	var monsters []models.Monster
	err := s.db.Where("owner_id = ?", userID).
		Order("created_at asc").
		Find(&monsters).Error
	return monsters, err
}

// SwitchActiveMonster points the user's active-monster reference at another
// monster they own.
func (s *MonsterService) SwitchActiveMonster(userID, monsterID uint) (*models.Monster, error) {
	var monster models.Monster
	err := s.db.Where("id = ? AND owner_id = ?", monsterID, userID).First(&monster).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrMonsterNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("active_monster_id", monsterID).Error; err != nil {
		return nil, err
	}
	return &monster, nil
}

// FeedMonster raises the active monster's hunger by 30 (capped at 100) and
// recomputes its mood.
func (s *MonsterService) FeedMonster(userID uint) (*models.Monster, error) {
	monster, err := s.requireActiveMonster(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monster.Hunger = FeedHunger(monster.Hunger)
	monster.Mood = CalculateMood(monster.Hunger)
	monster.LastFedAt = now
	monster.LastActiveAt = now

	if err := s.db.Model(monster).Updates(map[string]interface{}{
		"hunger":         monster.Hunger,
		"mood":           monster.Mood,
		"last_fed_at":    monster.LastFedAt,
		"last_active_at": monster.LastActiveAt,
	}).Error; err != nil {
		return nil, err
	}
	return monster, nil
}

// GetMonsterStatus applies pull-based hunger decay: one point per whole
// hour since the last feeding, floored at zero. Nothing is written when no
// whole hour has elapsed, so the read is idempotent within the hour.
func (s *MonsterService) GetMonsterStatus(userID uint) (*MonsterStatus, error) {
	monster, err := s.requireActiveMonster(userID)
	if err != nil {
		return nil, err
	}

	decay := HungerDecay(monster.LastFedAt, time.Now())
	if decay == 0 {
		return &MonsterStatus{Monster: monster, HungerDecay: 0}, nil
	}

	newHunger := monster.Hunger - decay
	if newHunger < 0 {
		newHunger = 0
	}

	monster.Hunger = newHunger
	monster.Mood = CalculateMood(newHunger)
	// Advance the anchor by the hours just consumed so the same decay is
	// never charged twice; the partial-hour remainder keeps ticking.
	monster.LastFedAt = monster.LastFedAt.Add(time.Duration(decay) * time.Hour)
	monster.LastActiveAt = time.Now()

	if err := s.db.Model(monster).Updates(map[string]interface{}{
		"hunger":         monster.Hunger,
		"mood":           monster.Mood,
		"last_fed_at":    monster.LastFedAt,
		"last_active_at": monster.LastActiveAt,
	}).Error; err != nil {
		return nil, err
	}

	return &MonsterStatus{Monster: monster, HungerDecay: decay}, nil
}

// UpdateMonsterXP grants XP to the active monster and recomputes its stage.
// Stage only moves up; the evolved flag reports a threshold crossing.
func (s *MonsterService) UpdateMonsterXP(userID uint, xpGained int) (*UpdateXPResult, error) {
	monster, err := s.requireActiveMonster(userID)
	if err != nil {
		return nil, err
	}

	newXP := monster.XP + xpGained
	newStage := CalculateStage(newXP)
	evolved := newStage > monster.Stage

	monster.XP = newXP
	if evolved {
		monster.Stage = newStage
	}
	monster.LastActiveAt = time.Now()

	if err := s.db.Model(monster).Updates(map[string]interface{}{
		"xp":             monster.XP,
		"stage":          monster.Stage,
		"last_active_at": monster.LastActiveAt,
	}).Error; err != nil {
		return nil, err
	}

	return &UpdateXPResult{Monster: monster, Evolved: evolved}, nil
}

func (s *MonsterService) requireActiveMonster(userID uint) (*models.Monster, error) {
	monster, err := s.GetActiveMonster(userID)
	if err != nil {
		return nil, err
	}
	if monster == nil {
		return nil, ErrNoActiveMonster
	}
	return monster, nil
}
