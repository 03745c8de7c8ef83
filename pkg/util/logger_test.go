package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerRespectsFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := LoggerConfig{Level: LevelWarn, Format: FormatText, Output: &buf}
	logger := NewLogger(cfg)

	logger.Info("should not appear")
	logger.Warn("should appear", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
	assert.Contains(t, out, "key=value")
}

func TestDefaultLoggerConfigUsesJSON(t *testing.T) {
	cfg := DefaultLoggerConfig()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestGetOptimalPoolSizeIsBounded(t *testing.T) {
	size := GetOptimalPoolSize()
	assert.GreaterOrEqual(t, size, 4)
	assert.LessOrEqual(t, size, 32)
}

func TestGetOptimalPoolSizeWithOverride(t *testing.T) {
	assert.Equal(t, 7, GetOptimalPoolSizeWithOverride(7))
	assert.Equal(t, GetOptimalPoolSize(), GetOptimalPoolSizeWithOverride(0))
}
