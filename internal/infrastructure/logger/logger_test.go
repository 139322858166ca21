package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sentiment-bot/config"
)

func TestNewWithSink_Levels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{"json info", config.LogConfig{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"console debug", config.LogConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"invalid level falls back to info", config.LogConfig{Level: "loud", Format: "json"}, zapcore.InfoLevel},
		{"warn", config.LogConfig{Level: "warn", Format: "console"}, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewWithSink(tt.cfg, zapcore.AddSync(new(bytes.Buffer)))

			assert.True(t, log.Core().Enabled(tt.level))
			assert.False(t, log.Core().Enabled(tt.level-1))
		})
	}
}

func TestNewWithSink_JSONRecord(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithSink(config.LogConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))

	log.Named("classifier").Info("engine ready", zap.String("engine", "vader"))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "engine ready", record["msg"])
	assert.Equal(t, "classifier", record["logger"])
	assert.Equal(t, "vader", record["engine"])
	assert.Equal(t, Service, record["service"])
	assert.Contains(t, record, "timestamp")
	assert.Contains(t, record, "caller")
}

func TestNew_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	log, err := New(config.LogConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	log.Warn("model service is slow")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "model service is slow")

	_, err = New(config.LogConfig{Output: filepath.Join(t.TempDir(), "missing", "bot.log")})
	assert.Error(t, err)

	log, err = New(config.LogConfig{})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
