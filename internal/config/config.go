package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RedisURL       string
	ServerPort     string
	AdminUsername  string
	AdminPassword  string
	SessionTimeout int // seconds
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		SessionTimeout: getEnvAsInt("SESSION_TIMEOUT", 3600),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
