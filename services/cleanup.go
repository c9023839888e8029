// services/cleanup.go - Duplicate monster cleanup
//
// Earlier releases could hand a user several monsters of the same species.
// This administrative pass keeps the strongest of each species per user,
// deletes the rest, and repoints the active-monster reference when the
// deleted one was active.
package services

import (
	"log"
	"sort"

	"taskmon/models"

	"gorm.io/gorm"
)

type CleanupService struct {
	db *gorm.DB
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{db: db}
}

// CleanupReport summarizes one cleanup run.
type CleanupReport struct {
	UsersProcessed  int `json:"users_processed"`
	MonstersRemoved int `json:"monsters_removed"`
}

// CleanupDuplicateMonsters removes duplicate monsters across all users.
func (s *CleanupService) CleanupDuplicateMonsters() (*CleanupReport, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	report := &CleanupReport{}
	for _, user := range users {
		removed, err := s.cleanupUser(&user)
		if err != nil {
			log.Printf("Error cleaning up monsters for user %d: %v", user.ID, err)
			continue
		}
		report.UsersProcessed++
		report.MonstersRemoved += removed
	}

	log.Printf("✅ Cleanup completed: removed %d duplicate monsters across %d users",
		report.MonstersRemoved, report.UsersProcessed)
	return report, nil
}

func (s *CleanupService) cleanupUser(user *models.User) (int, error) {
	var monsters []models.Monster
	if err := s.db.Where("owner_id = ?", user.ID).Find(&monsters).Error; err != nil {
		return 0, err
	}

	bySpecies := make(map[string][]models.Monster)
	for _, m := range monsters {
		bySpecies[m.Species] = append(bySpecies[m.Species], m)
	}

	removed := 0
	for species, group := range bySpecies {
		if len(group) < 2 {
			continue
		}

		// Keep the highest-XP monster of the species; first created wins a
		// tie.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].XP > group[j].XP
		})
		keep := group[0]
		duplicates := group[1:]

		err := s.db.Transaction(func(tx *gorm.DB) error {
			for _, dup := range duplicates {
				if err := tx.Delete(&models.Monster{}, dup.ID).Error; err != nil {
					return err
				}

				if user.ActiveMonsterID != nil && *user.ActiveMonsterID == dup.ID {
					if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
						Update("active_monster_id", keep.ID).Error; err != nil {
						return err
					}
					id := keep.ID
					user.ActiveMonsterID = &id
				}
			}
			return nil
		})
		if err != nil {
			return removed, err
		}

		removed += len(duplicates)
		log.Printf("  Kept %s with %d XP for user %d, removed %d duplicates",
			species, keep.XP, user.ID, len(duplicates))
	}

	return removed, nil
}
