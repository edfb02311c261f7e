package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("ALLOW_ANONYMOUS_SKILL_CREATE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.AllowAnonymousSkillCreate)
	assert.Equal(t, "talento.users", cfg.KafkaUserEventsTopic)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("ALLOW_ANONYMOUS_SKILL_CREATE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.AllowAnonymousSkillCreate)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("BROKEN_INT", "abc")
	t.Setenv("BROKEN_BOOL", "maybe")
	assert.Equal(t, 5, getEnvInt("BROKEN_INT", 5))
	assert.True(t, getEnvBool("BROKEN_BOOL", true))
}
