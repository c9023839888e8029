// models/monster.go
package models

import "time"

// Monster moods, derived from hunger. Never set directly by clients.
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

// Monster species ladder. Stage 1 monsters start as slimes and evolve
// through the warrior and king forms.
const (
	SpeciesSlime        = "slime"
	SpeciesSlimeWarrior = "slime-warrior"
	SpeciesSlimeKing    = "slime-king"
)

type Monster struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`
	Species string `gorm:"not null;size:50" json:"species"`

	// Stage is 1-3 and only ever moves up, driven by XP thresholds.
	Stage  int    `gorm:"default:1" json:"stage"`
	XP     int    `gorm:"default:0" json:"xp"`
	Hunger int    `gorm:"default:100" json:"hunger"`
	Mood   string `gorm:"default:'happy';size:20" json:"mood"`

	LastFedAt    time.Time `json:"last_fed_at"`
	LastActiveAt time.Time `json:"last_active_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Monster) TableName() string {
	return "monsters"
}
