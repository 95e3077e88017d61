package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/config"
	"github.com/llmdesk/llmdesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds the account directory and the model catalog. Safe to run twice:
// existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DBAdapter, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedAccounts(); err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}

	if err := seedModels(); err != nil {
		log.Fatalf("Failed to seed models: %v", err)
	}

	log.Println("Seeding complete")
}

func seedAccounts() error {
	accounts := []struct {
		Email      string
		Password   string
		Name       string
		Department string
		Role       models.Role
	}{
		{"admin@example.com", "admin123", "Administrator", "IT", models.RoleAdmin},
		{"user@example.com", "user123", "Regular User", "Engineering", models.RoleUser},
	}

	for _, seed := range accounts {
		var count int64

		if err := db.DB.Model(&models.Account{}).Where("email = ?", seed.Email).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			log.Printf("Account %s already exists, skipping", seed.Email)
			continue
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)

		if err != nil {
			return err
		}

		account := models.Account{
			Email:        seed.Email,
			PasswordHash: string(passwordHash),
			Name:         seed.Name,
			Department:   seed.Department,
			Role:         seed.Role,
		}

		if err := db.DB.Create(&account).Error; err != nil {
			return err
		}

		log.Printf("Created account %s (%s)", seed.Email, seed.Role)
	}

	return nil
}

func seedModels() error {
	var count int64

	if err := db.DB.Model(&models.LlmModel{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Printf("Model catalog already has %d entries, skipping", count)
		return nil
	}

	fullConfig := datatypes.JSON(`{"max_tokens":4096,"temperature":0.7,"top_p":1,"frequency_penalty":0,"presence_penalty":0}`)
	shortConfig := datatypes.JSON(`{"max_tokens":4096,"temperature":0.7,"top_p":1}`)

	catalog := []models.LlmModel{
		{
			Name:        "GPT-4",
			Provider:    "OpenAI",
			Description: "OpenAI's high-end language model, strong at complex reasoning and creative work.",
			Active:      true,
			Config:      fullConfig,
		},
		{
			Name:        "GPT-3.5-turbo",
			Provider:    "OpenAI",
			Description: "OpenAI's fast, efficient language model, suited to everyday conversation and text tasks.",
			Active:      true,
			Config:      fullConfig,
		},
		{
			Name:        "Claude-3",
			Provider:    "Anthropic",
			Description: "Anthropic's safe and helpful AI assistant, strong at long-context understanding.",
			Active:      true,
			Config:      shortConfig,
		},
		{
			Name:        "Gemini-Pro",
			Provider:    "Google",
			Description: "Google's multimodal AI model, able to process text and images together.",
			Active:      true,
			Config:      shortConfig,
		},
	}

	for _, model := range catalog {
		if err := db.DB.Create(&model).Error; err != nil {
			return err
		}

		log.Printf("Created model %s (%s)", model.Name, model.Provider)
	}

	return nil
}
