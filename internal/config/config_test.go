package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "localhost", c.Server.Host)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "localhost:8080", c.Server.Addr())
	assert.Equal(t, 15*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, c.Server.IdleTimeout)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, int64(32<<20), c.Upload.MaxBytes)
	assert.False(t, c.Parser.LegacyDispatch)
	assert.Equal(t, 10, c.Analysis.WindowWidth)
	assert.Equal(t, 30*time.Minute, c.Session.TTL)
	assert.Equal(t, 1000, c.Session.MaxSessions)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: 9090
  read-timeout: 5s
log:
  level: debug
parser:
  legacy-dispatch: true
analysis:
  window-width: 12
session:
  ttl: 5m
  max: 20
`), 0o644)
	require.NoError(t, err)

	c, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, 5*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, "localhost", c.Server.Host)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Parser.LegacyDispatch)
	assert.Equal(t, 12, c.Analysis.WindowWidth)
	assert.Equal(t, 5*time.Minute, c.Session.TTL)
	assert.Equal(t, 20, c.Session.MaxSessions)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SEQANALYSER_SERVER_PORT", "7070")
	t.Setenv("SEQANALYSER_PARSER_LEGACY_DISPATCH", "true")

	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Server.Port)
	assert.True(t, c.Parser.LegacyDispatch)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	v := New()
	v.Set("analysis.window-width", 0)
	_, err := Load(v, "")
	require.Error(t, err)

	v = New()
	v.Set("server.port", 70000)
	_, err = Load(v, "")
	require.Error(t, err)

	v = New()
	v.Set("session.ttl", -time.Second)
	_, err = Load(v, "")
	require.Error(t, err)

	v = New()
	v.Set("session.max", -1)
	_, err = Load(v, "")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"", log.InfoLevel},
		{"INFO", log.InfoLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"loud", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := LogConfig{Level: tt.level}.NewLogger(&buf)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerReportsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "loud"}.NewLogger(&buf)
	assert.Contains(t, buf.String(), "unknown log level")
}
