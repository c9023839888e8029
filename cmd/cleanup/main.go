// cmd/cleanup - Removes duplicate monsters left behind by old seed runs.
package main

import (
	"log"

	"taskmon/database"
	"taskmon/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()

	log.Println("🧹 Starting duplicate monster cleanup...")

	cleanup := services.NewCleanupService(database.GetDB())
	report, err := cleanup.CleanupDuplicateMonsters()
	if err != nil {
		log.Fatal("Cleanup failed:", err)
	}

	log.Printf("🎉 Cleanup completed! Removed %d duplicate monsters across %d users.",
		report.MonstersRemoved, report.UsersProcessed)
}
