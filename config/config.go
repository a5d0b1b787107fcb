package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	AllowOrigins string

	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads configuration from the environment, falling back to a .env file
// when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		EmailUser:       os.Getenv("EMAIL_USER"),
		EmailPass:       os.Getenv("EMAIL_PASS"),
		AllowOrigins:    getEnvOrDefault("ALLOW_ORIGINS", "*"),
		LoginRateLimit:  10,
		LoginRateWindow: time.Minute,
	}

	cfg.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))

	if limit := os.Getenv("LOGIN_RATE_LIMIT"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed > 0 {
			cfg.LoginRateLimit = parsed
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
