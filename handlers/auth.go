// handlers/auth.go - Registration, login, profile, streak
package handlers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"taskmon/database"
	"taskmon/middleware"
	"taskmon/models"
	"taskmon/services"
	"taskmon/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Register creates a new account together with its starter monster.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := utils.ValidateEmail(req.Email); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: err.Error()})
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: err.Error()})
	}
	if err := utils.ValidateDisplayName(req.DisplayName); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: err.Error()})
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(409).JSON(AuthResponse{Success: false, Error: services.ErrEmailTaken.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to hash password"})
	}

	now := time.Now()
	user := models.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Level:       1,
		XP:          0,
		Streak:      1,
		LastLoginAt: now,
	}

	// The user, the starter monster, and the active-monster pointer land
	// together or not at all.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		monster := models.Monster{
			OwnerID:      user.ID,
			Species:      models.SpeciesSlime,
			Stage:        1,
			XP:           0,
			Hunger:       100,
			Mood:         models.MoodHappy,
			LastFedAt:    now,
			LastActiveAt: now,
		}
		if err := tx.Create(&monster).Error; err != nil {
			return err
		}

		user.ActiveMonsterID = &monster.ID
		return tx.Model(&user).Update("active_monster_id", monster.ID).Error
	})
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to create account"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.Status(201).JSON(AuthResponse{Success: true, Token: token, User: &user})
}

// Login authenticates a user and advances their daily streak.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Email and password required"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: services.ErrInvalidCredentials.Error()})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: services.ErrInvalidCredentials.Error()})
	}

	if _, err := services.UpdateLoginStreak(db, user.ID); err != nil {
		return serviceError(c, err)
	}

	// Re-read so the response carries the updated streak and login time.
	if err := db.First(&user, user.ID).Error; err != nil {
		return serviceError(c, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(AuthResponse{Success: true, Token: token, User: &user})
}

// GetCurrentUser returns the authenticated user's profile.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.Preload("ActiveMonster").First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": services.ErrUserNotFound.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// GetStreak returns the user's login streak with a friendly message.
func GetStreak(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": services.ErrUserNotFound.Error()})
	}

	message := "Start your streak today!"
	if user.Streak > 0 {
		message = fmt.Sprintf("You're on a %d-day streak!", user.Streak)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"streak":        user.Streak,
		"last_login_at": user.LastLoginAt,
		"message":       message,
	})
}

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "taskmon-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
