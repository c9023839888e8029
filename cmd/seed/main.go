// cmd/seed - Seeds the database with a test account and sample data.
package main

import (
	"log"
	"time"

	"taskmon/database"
	"taskmon/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	db := database.GetDB()

	log.Println("🌱 Starting database seed...")

	var user models.User
	err := db.Where("email = ?", "test@taskmon.dev").First(&user).Error
	if err == nil {
		log.Println("Test user already exists, skipping seed")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()
	user = models.User{
		Email:       "test@taskmon.dev",
		Password:    string(passwordHash),
		DisplayName: "Test User",
		XP:          50,
		Level:       1,
		Streak:      3,
		LastLoginAt: now,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create test user:", err)
	}
	log.Println("✅ Created test user:", user.Email)

	monster := models.Monster{
		OwnerID:      user.ID,
		Species:      models.SpeciesSlime,
		Stage:        1,
		XP:           25,
		Hunger:       85,
		Mood:         models.MoodHappy,
		LastFedAt:    now,
		LastActiveAt: now,
	}
	if err := db.Create(&monster).Error; err != nil {
		log.Fatal("Failed to create monster:", err)
	}
	if err := db.Model(&user).Update("active_monster_id", monster.ID).Error; err != nil {
		log.Fatal("Failed to set active monster:", err)
	}
	log.Println("✅ Created starter monster")

	completedAt := now
	quests := []models.Quest{
		{
			UserID:      user.ID,
			Title:       "Complete project documentation",
			Description: "Write comprehensive documentation for the current project",
			Difficulty:  models.QuestDifficultyHard,
			Type:        models.QuestTypeNormal,
			RewardXP:    25,
			Status:      models.QuestStatusOpen,
		},
		{
			UserID:      user.ID,
			Title:       "Daily exercise",
			Description: "Go for a 30-minute walk or workout",
			Difficulty:  models.QuestDifficultyEasy,
			Type:        models.QuestTypeDaily,
			RewardXP:    15,
			Status:      models.QuestStatusOpen,
		},
		{
			UserID:      user.ID,
			Title:       "Read a book chapter",
			Description: "Read at least one chapter of your current book",
			Difficulty:  models.QuestDifficultyNormal,
			Type:        models.QuestTypeDaily,
			RewardXP:    10,
			Status:      models.QuestStatusDone,
			CompletedAt: &completedAt,
		},
	}
	for i := range quests {
		if err := db.Create(&quests[i]).Error; err != nil {
			log.Fatal("Failed to create quest:", err)
		}
	}
	log.Println("✅ Created sample quests")

	achievement := models.Achievement{
		UserID:   user.ID,
		Slug:     "first_quest_done",
		EarnedAt: now,
	}
	if err := db.Create(&achievement).Error; err != nil {
		log.Fatal("Failed to create achievement:", err)
	}
	log.Println("✅ Created sample achievement")

	log.Println("🎉 Database seeding completed!")
	log.Println("📧 Test user email: test@taskmon.dev")
	log.Println("🔑 Test user password: password123")
}
