package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "gym_management.db", cfg.DatabasePath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin", cfg.AdminPassword)
	assert.Equal(t, 30, cfg.RenewalExtensionDays)
	assert.False(t, cfg.RenewalUsePlanInterval)
	assert.Equal(t, 7, cfg.TrialPeriodDays)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/gym.db")
	t.Setenv("RENEWAL_EXTENSION_DAYS", "45")
	t.Setenv("RENEWAL_USE_PLAN_INTERVAL", "true")
	t.Setenv("TRIAL_PERIOD_DAYS", "14")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/gym.db", cfg.DatabasePath)
	assert.Equal(t, 45, cfg.RenewalExtensionDays)
	assert.True(t, cfg.RenewalUsePlanInterval)
	assert.Equal(t, 14, cfg.TrialPeriodDays)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("RENEWAL_EXTENSION_DAYS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 30, cfg.RenewalExtensionDays)
}
