package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/llmdesk/llmdesk/db"
	"github.com/llmdesk/llmdesk/internal/auth"
	"github.com/llmdesk/llmdesk/internal/config"
	"github.com/llmdesk/llmdesk/internal/logger"
	"github.com/llmdesk/llmdesk/internal/router"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.LogPath)
	defer logger.L().Sync()

	if err := auth.Init(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL); err != nil {
		logger.L().Fatal("failed to initialize auth", zap.Error(err))
	}

	if err := db.ConnectDatabase(cfg.DBAdapter, cfg.DatabaseURL); err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.L().Fatal("failed to migrate database", zap.Error(err))
	}

	r := router.NewRouter()

	logger.L().Info("starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
