package services

import (
	"errors"
	"testing"
	"time"

	"taskmon/models"
)

func TestCreateQuestDefaults(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewQuestService(db)

	quest, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Water the plants"})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}

	if quest.Status != models.QuestStatusOpen {
		t.Errorf("Status = %q, want %q", quest.Status, models.QuestStatusOpen)
	}
	if quest.Difficulty != models.QuestDifficultyNormal {
		t.Errorf("Difficulty = %q, want %q", quest.Difficulty, models.QuestDifficultyNormal)
	}
	if quest.Type != models.QuestTypeNormal {
		t.Errorf("Type = %q, want %q", quest.Type, models.QuestTypeNormal)
	}
	if quest.RewardXP != 10 {
		t.Errorf("RewardXP = %d, want 10", quest.RewardXP)
	}
}

func TestGetQuestScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db)
	svc := NewQuestService(db)

	other := &models.User{Email: "other@taskmon.dev", Password: "x", DisplayName: "Other", Level: 1}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("failed to create second user: %v", err)
	}

	quest, err := svc.CreateQuest(owner.ID, CreateQuestInput{Title: "Read a chapter"})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}

	if _, err := svc.GetQuest(quest.ID, other.ID); !errors.Is(err, ErrQuestNotFound) {
		t.Errorf("GetQuest for non-owner: err = %v, want ErrQuestNotFound", err)
	}
	if err := svc.DeleteQuest(quest.ID, other.ID); !errors.Is(err, ErrQuestNotFound) {
		t.Errorf("DeleteQuest for non-owner: err = %v, want ErrQuestNotFound", err)
	}
	if _, err := svc.GetQuest(quest.ID, owner.ID); err != nil {
		t.Errorf("GetQuest for owner failed: %v", err)
	}
}

func TestGetQuestsOrdering(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewQuestService(db)

	soon := time.Now().Add(1 * time.Hour)
	later := time.Now().Add(48 * time.Hour)

	finished, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Finished"})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	if _, err := svc.CompleteQuest(finished.ID, user.ID); err != nil {
		t.Fatalf("CompleteQuest failed: %v", err)
	}
	if _, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Open later", DueAt: &later}); err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	if _, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Open soon", DueAt: &soon}); err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}

	quests, err := svc.GetQuests(user.ID)
	if err != nil {
		t.Fatalf("GetQuests failed: %v", err)
	}

	// Open quests come before done ones, soonest due date first.
	want := []string{"Open soon", "Open later", "Finished"}
	if len(quests) != len(want) {
		t.Fatalf("got %d quests, want %d", len(quests), len(want))
	}
	for i, title := range want {
		if quests[i].Title != title {
			t.Errorf("quests[%d] = %q, want %q", i, quests[i].Title, title)
		}
	}
}

func TestUpdateQuestPartial(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewQuestService(db)

	quest, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Old title", RewardXP: 20})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}

	newTitle := "New title"
	updated, err := svc.UpdateQuest(quest.ID, user.ID, UpdateQuestInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateQuest failed: %v", err)
	}

	if updated.Title != "New title" {
		t.Errorf("Title = %q, want %q", updated.Title, "New title")
	}
	if updated.RewardXP != 20 {
		t.Errorf("RewardXP changed to %d, want 20 untouched", updated.RewardXP)
	}
}

func TestCompleteQuestAwardsXP(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewQuestService(db)

	// 80 XP banked, an epic quest worth 150 pushes the user to level 3.
	if err := db.Model(user).Updates(map[string]interface{}{"xp": 80, "level": 1}).Error; err != nil {
		t.Fatalf("failed to seed xp: %v", err)
	}

	quest, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Slay the backlog", RewardXP: 150})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}

	result, err := svc.CompleteQuest(quest.ID, user.ID)
	if err != nil {
		t.Fatalf("CompleteQuest failed: %v", err)
	}

	if result.XPGained != 150 {
		t.Errorf("XPGained = %d, want 150", result.XPGained)
	}
	if result.NewLevel != 3 {
		t.Errorf("NewLevel = %d, want 3", result.NewLevel)
	}
	if !result.LevelUp {
		t.Error("LevelUp = false, want true")
	}
	if result.Quest.Status != models.QuestStatusDone {
		t.Errorf("quest Status = %q, want %q", result.Quest.Status, models.QuestStatusDone)
	}
	if result.Quest.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if fresh.XP != 230 {
		t.Errorf("user XP = %d, want 230", fresh.XP)
	}
	if fresh.Level != 3 {
		t.Errorf("user Level = %d, want 3", fresh.Level)
	}
}

func TestCompleteQuestTwice(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewQuestService(db)

	quest, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Do the dishes"})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}

	if _, err := svc.CompleteQuest(quest.ID, user.ID); err != nil {
		t.Fatalf("first CompleteQuest failed: %v", err)
	}
	if _, err := svc.CompleteQuest(quest.ID, user.ID); !errors.Is(err, ErrQuestAlreadyCompleted) {
		t.Errorf("second CompleteQuest: err = %v, want ErrQuestAlreadyCompleted", err)
	}

	var fresh models.User
	if err := db.First(&fresh, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if fresh.XP != 10 {
		t.Errorf("user XP = %d after double complete, want 10", fresh.XP)
	}
}

func TestGetQuestStats(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewQuestService(db)

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	if _, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Overdue one", DueAt: &past}); err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	if _, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Future one", DueAt: &future}); err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	done, err := svc.CreateQuest(user.ID, CreateQuestInput{Title: "Done one"})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	if _, err := svc.CompleteQuest(done.ID, user.ID); err != nil {
		t.Fatalf("CompleteQuest failed: %v", err)
	}

	stats, err := svc.GetQuestStats(user.ID)
	if err != nil {
		t.Fatalf("GetQuestStats failed: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.Open != 2 {
		t.Errorf("Open = %d, want 2", stats.Open)
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
}
