// models/achievement.go
package models

import "time"

// Achievement is a per-user unlock record. A slug can be earned at most
// once per user, enforced by the composite unique index.
type Achievement struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_slug" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`
	Slug   string `gorm:"not null;size:100;uniqueIndex:idx_user_slug" json:"slug"`

	EarnedAt time.Time `json:"earned_at"`
	Meta     string    `gorm:"type:text" json:"meta,omitempty"`

	// Claimed flips false -> true exactly once, when the user collects the
	// Monster Points reward.
	Claimed bool `gorm:"default:false" json:"claimed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}
