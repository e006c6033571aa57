package config

import (
	"os"
	"strings"
)

// Config holds everything the process reads from the environment. It is
// built once at startup and handed to whatever needs it; business logic
// never reads environment variables directly.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Port           string
	AllowedOrigins []string
}

// LoadConfig builds a Config from the environment, falling back to
// development defaults.
func LoadConfig() *Config {
	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "fridgey"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
