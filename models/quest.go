// models/quest.go
package models

import "time"

const (
	QuestStatusOpen = "open"
	QuestStatusDone = "done"
)

const (
	QuestDifficultyEasy   = "easy"
	QuestDifficultyNormal = "normal"
	QuestDifficultyHard   = "hard"
)

const (
	QuestTypeDaily  = "daily"
	QuestTypeWeekly = "weekly"
	QuestTypeNormal = "normal"
)

type Quest struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        *User  `gorm:"foreignKey:UserID" json:"-"`
	Title       string `gorm:"not null;size:100" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Difficulty  string `gorm:"default:'normal';size:20" json:"difficulty"`
	Type        string `gorm:"default:'normal';size:20" json:"type"`

	// Status is open or done; the transition is one-way.
	Status   string `gorm:"default:'open';size:20;index" json:"status"`
	RewardXP int    `gorm:"default:10" json:"reward_xp"`

	DueAt       *time.Time `json:"due_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Quest) TableName() string {
	return "quests"
}
