package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port            string
	DBAdapter       string
	DatabaseURL     string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	LogPath         string
}

// Load reads configuration from the environment. Everything has a
// development default except JWT_SECRET, which auth.Init rejects when empty;
// the seed tool runs without one.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		DBAdapter:       getEnv("DB_ADAPTER", "postgres"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: time.Hour * 168,
		LogPath:         os.Getenv("LOG_PATH"),
	}

	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.AccessTokenTTL = parsed
	}

	if ttl := os.Getenv("REFRESH_TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
		}
		cfg.RefreshTokenTTL = parsed
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDSN(cfg.DBAdapter)
	}

	return cfg, nil
}

func buildDSN(adapter string) string {
	host := getEnv("DB_HOST", "localhost")
	user := getEnv("DB_USERNAME", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	name := getEnv("DB_NAME", "llmdesk")

	if adapter == "mysql" {
		port := getEnv("DB_PORT", "3306")
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, password, host, port, name)
	}

	port := getEnv("DB_PORT", "5432")
	sslMode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
