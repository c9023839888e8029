package services

import (
	"testing"
	"time"

	"taskmon/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled second connection would see a different empty :memory: DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Monster{},
		&models.Quest{},
		&models.Achievement{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// createTestUser inserts a user and returns it.
func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Email:       "tester@taskmon.dev",
		Password:    "not-a-real-hash",
		DisplayName: "Tester",
		Level:       1,
		LastLoginAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// createTestMonster inserts a monster for the user and marks it active.
func createTestMonster(t *testing.T, db *gorm.DB, user *models.User, species string) *models.Monster {
	t.Helper()

	now := time.Now()
	monster := &models.Monster{
		OwnerID:      user.ID,
		Species:      species,
		Stage:        1,
		Hunger:       100,
		Mood:         models.MoodHappy,
		LastFedAt:    now,
		LastActiveAt: now,
	}
	if err := db.Create(monster).Error; err != nil {
		t.Fatalf("failed to create test monster: %v", err)
	}

	if user.ActiveMonsterID == nil {
		if err := db.Model(user).Update("active_monster_id", monster.ID).Error; err != nil {
			t.Fatalf("failed to set active monster: %v", err)
		}
		user.ActiveMonsterID = &monster.ID
	}
	return monster
}
