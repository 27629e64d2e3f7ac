package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{
		Format: "json",
		Level:  "info",
		Output: zapcore.AddSync(&buf),
	})
	require.NoError(t, err)

	logger.Info("extraction complete", zap.Int("triangles", 7))
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "extraction complete", entry["msg"])
	assert.Equal(t, float64(7), entry["triangles"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{
		Format: "json",
		Level:  "error",
		Output: zapcore.AddSync(&buf),
	})
	require.NoError(t, err)

	logger.Info("should be dropped")
	require.NoError(t, logger.Sync())
	assert.Empty(t, buf.Bytes())

	logger.Error("should be written")
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "should be written")
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{Format: "json", Level: "verbose"})
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger()
	require.NotNil(t, logger)
	// Must be safe to use without any sink.
	logger.Info("dropped")
	logger.Error("dropped too")
}
