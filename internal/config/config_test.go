package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:9090", cfg.Server.PublicBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, 14, cfg.Scheduler.ReminderWindowDays)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://portal.example.edu/")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("LATENCY_SCALE", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.edu , ,https://b.example.edu")
	t.Setenv("REMINDER_WINDOW_DAYS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://portal.example.edu", cfg.Server.PublicBaseURL)
	assert.Equal(t, 2*time.Hour, cfg.JWT.SessionTTL)
	assert.Equal(t, 0.0, cfg.Transport.LatencyScale)
	assert.Equal(t, []string{"https://a.example.edu", "https://b.example.edu"}, cfg.CORS.Origins())
	assert.Equal(t, 14, cfg.Scheduler.ReminderWindowDays)
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "-1")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL_HOURS", "1")
	t.Setenv("LATENCY_SCALE", "-2")
	_, err = Load()
	assert.Error(t, err)
}
