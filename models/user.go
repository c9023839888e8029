// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"display_name"`

	// Progression
	Level         int `gorm:"default:1" json:"level"`
	XP            int `gorm:"default:0" json:"xp"`
	Streak        int `gorm:"default:0" json:"streak"`
	MonsterPoints int `gorm:"default:0" json:"monster_points"`

	// The monster currently shown on the dashboard. Nil until the starter
	// monster is created at registration.
	ActiveMonsterID *uint    `gorm:"index" json:"active_monster_id"`
	ActiveMonster   *Monster `gorm:"foreignKey:ActiveMonsterID" json:"active_monster,omitempty"`

	// Timestamps
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastLoginAt time.Time `json:"last_login_at"`

	// Relationships
	Monsters     []Monster     `gorm:"foreignKey:OwnerID" json:"monsters,omitempty"`
	Quests       []Quest       `gorm:"foreignKey:UserID" json:"quests,omitempty"`
	Achievements []Achievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

func (User) TableName() string {
	return "users"
}
