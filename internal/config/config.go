package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds everything read from the environment. A .env file next to
// the working directory is loaded first when present; real environment
// variables win over it.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	LogLevel     zerolog.Level
}

const defaultModel = "gemini-3-pro-preview"

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env file is not an error.
func Load() Config {
	if _, err := os.Stat(".env"); err == nil {
		// godotenv does not override variables already set, which is the
		// precedence we want.
		_ = godotenv.Load(".env")
	}

	return Config{
		GeminiAPIKey: getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:  getEnv("MINDFUL_MODEL", defaultModel),
		LogLevel:     parseLevel(getEnv("MINDFUL_LOG_LEVEL", "warn")),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
