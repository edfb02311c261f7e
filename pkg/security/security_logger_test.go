package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@x.com", MaskEmail("alice@x.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, "***@x.com", MaskEmail("a@x.com"))
}

func TestHashValueIsStable(t *testing.T) {
	assert.Equal(t, HashValue("u-1"), HashValue("u-1"))
	assert.Len(t, HashValue("u-1"), 16)
	assert.NotEqual(t, HashValue("u-1"), HashValue("u-2"))
}

func TestLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "talento-local", "test")

	sl.LogLoginFailed(context.Background(), "alice@x.com", "10.0.0.1", "curl", "req-1", "invalid_password")
	sl.LogAccessDenied(context.Background(), EventForbiddenAccess, "u-1", "10.0.0.1", "req-2", "/api/me/skills", "role")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "a***@x.com", entries[0].ContextMap()["subject_value"])
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.NotContains(t, entries[1].ContextMap()["subject_value"], "u-1")
	}
}
