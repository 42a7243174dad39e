// internal/config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	Environment  string
	DatabasePath string
	JWTSecret    string
	JWTExpiry    int

	// Admin login (single-user application, credentials are a placeholder)
	AdminUsername string
	AdminPassword string

	// Renewal policy
	RenewalExtensionDays   int
	RenewalUsePlanInterval bool

	// New members start with a short trial window
	TrialPeriodDays int
}

func Load() *Config {
	return &Config{
		Port:         getEnv("API_PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		DatabasePath: getEnv("DATABASE_PATH", "gym_management.db"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:    getEnvInt("JWT_EXPIRY", 24),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		RenewalExtensionDays:   getEnvInt("RENEWAL_EXTENSION_DAYS", 30),
		RenewalUsePlanInterval: getEnvBool("RENEWAL_USE_PLAN_INTERVAL", false),

		TrialPeriodDays: getEnvInt("TRIAL_PERIOD_DAYS", 7),
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
