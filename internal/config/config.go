package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the server.
type Config struct {
	APIPort         int
	RedisURL        string
	NATSURL         string
	DatabaseURL     string // optional; enables the alert archive when set
	JWTSecret       string
	OfficerUsername string
	OfficerPassword string
	StoreKey        string
	DemoStepDelay   time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		APIPort:         getEnvAsInt("API_PORT", 3000),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		NATSURL:         getEnv("NATS_URL", "nats://localhost:4222"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", "safar-guardian-secret-change-in-production"),
		OfficerUsername: getEnv("OFFICER_USERNAME", "officer"),
		OfficerPassword: getEnv("OFFICER_PASSWORD", "guardian123"),
		StoreKey:        getEnv("STORE_KEY", "smartSafarData"),
		DemoStepDelay:   time.Duration(getEnvAsInt("DEMO_STEP_DELAY_MS", 2000)) * time.Millisecond,
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
