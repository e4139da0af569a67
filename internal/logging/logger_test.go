package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"", zapcore.InfoLevel, false},
		{"chatty", zapcore.InfoLevel, true},
	}

	for _, tc := range testCases {
		got, err := ParseLevel(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
		} else {
			assert.NoError(t, err, tc.input)
		}
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	assert.NotNil(t, NewOrNop(Config{Level: "loud"}))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcars.log")
	logger, err := New(Config{Level: "debug", OutputPaths: []string{path}})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	logger.Debug("probe")
	logger.Sugar().Debugf("listed %d items", 3)
	_ = logger.Sync()

	assert.FileExists(t, path)
}

func TestDebugConfigIsDevelopment(t *testing.T) {
	cfg := DebugConfig()
	assert.True(t, cfg.Development)
	assert.Equal(t, "debug", cfg.Level)
	assert.False(t, DefaultConfig().Development)
}

func TestConfigFor(t *testing.T) {
	assert.Equal(t, DebugConfig(), ConfigFor("warn", true))
	assert.Equal(t, "warn", ConfigFor("warn", false).Level)
	assert.Equal(t, "info", ConfigFor("", false).Level)
}
