// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"taskmon/models"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations. It takes the database handle
// as a parameter so tests can migrate an in-memory database.
func RunMigrations(db *gorm.DB) {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Monster{},
		&models.Quest{},
		&models.Achievement{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes(db)

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates secondary indexes that AutoMigrate does not cover.
func createIndexes(db *gorm.DB) {
	// Quest list ordering is (status, due_at, created_at)
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_user_status ON quests(user_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_quests_due ON quests(due_at)")

	// Monster lookups by owner
	db.Exec("CREATE INDEX IF NOT EXISTS idx_monsters_owner ON monsters(owner_id)")

	// Achievement listing by earn time
	db.Exec("CREATE INDEX IF NOT EXISTS idx_achievements_earned ON achievements(user_id, earned_at DESC)")
}
