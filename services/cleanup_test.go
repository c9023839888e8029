package services

import (
	"testing"

	"taskmon/models"
)

func TestCleanupDuplicateMonsters(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewCleanupService(db)

	weak := createTestMonster(t, db, user, models.SpeciesSlime)
	strong := createTestMonster(t, db, user, models.SpeciesSlime)
	other := createTestMonster(t, db, user, "dragon")
	if err := db.Model(strong).Update("xp", 300).Error; err != nil {
		t.Fatalf("failed to seed xp: %v", err)
	}

	// The weak duplicate is the active monster; cleanup must repoint the
	// reference at the survivor.
	if err := db.Model(user).Update("active_monster_id", weak.ID).Error; err != nil {
		t.Fatalf("failed to set active monster: %v", err)
	}

	report, err := svc.CleanupDuplicateMonsters()
	if err != nil {
		t.Fatalf("CleanupDuplicateMonsters failed: %v", err)
	}

	if report.MonstersRemoved != 1 {
		t.Errorf("MonstersRemoved = %d, want 1", report.MonstersRemoved)
	}
	if report.UsersProcessed != 1 {
		t.Errorf("UsersProcessed = %d, want 1", report.UsersProcessed)
	}

	var remaining []models.Monster
	if err := db.Where("owner_id = ?", user.ID).Find(&remaining).Error; err != nil {
		t.Fatalf("failed to list monsters: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("remaining monsters = %d, want 2", len(remaining))
	}
	for _, m := range remaining {
		if m.ID == weak.ID {
			t.Error("weak duplicate survived cleanup")
		}
	}
	foundOther := false
	for _, m := range remaining {
		if m.ID == other.ID {
			foundOther = true
		}
	}
	if !foundOther {
		t.Error("non-duplicate species was removed")
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if fresh.ActiveMonsterID == nil || *fresh.ActiveMonsterID != strong.ID {
		t.Errorf("ActiveMonsterID = %v, want %d", fresh.ActiveMonsterID, strong.ID)
	}
}

func TestCleanupNoDuplicates(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	createTestMonster(t, db, user, models.SpeciesSlime)
	createTestMonster(t, db, user, "dragon")
	svc := NewCleanupService(db)

	report, err := svc.CleanupDuplicateMonsters()
	if err != nil {
		t.Fatalf("CleanupDuplicateMonsters failed: %v", err)
	}
	if report.MonstersRemoved != 0 {
		t.Errorf("MonstersRemoved = %d, want 0", report.MonstersRemoved)
	}
}
