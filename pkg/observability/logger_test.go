package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alexgaaranes/PJDSC-25/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func resetGlobalLogger() {
	once = sync.Once{}
	globalLogger.Store(nil)
}

func TestInitializeLoggerJSON(t *testing.T) {
	resetGlobalLogger()
	buf := new(bytes.Buffer)
	initializeLogger(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "sagip"}, zapcore.AddSync(buf))

	GetLogger().Info("route computed", zap.Int("nodes", 3))
	GetLogger().Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "sagip", entry["logger"])
	assert.Equal(t, "route computed", entry["msg"])
	assert.Equal(t, 3.0, entry["nodes"])
}

func TestInitializeLoggerOnce(t *testing.T) {
	resetGlobalLogger()
	first := new(bytes.Buffer)
	second := new(bytes.Buffer)
	initializeLogger(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(first))
	initializeLogger(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(second))

	GetLogger().Info("hello")
	assert.NotEmpty(t, first.String())
	assert.Empty(t, second.String())
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := NewLogger(config.LoggerConfig{Level: "loud", Format: "console"}, zapcore.AddSync(buf))
	logger.Debug("dropped")
	logger.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sagip.log")
	logger := NewLogger(config.LoggerConfig{Level: "debug", Format: "console", LogFile: path}, zapcore.AddSync(new(bytes.Buffer)))
	logger.Warn("flood zone updated")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"flood zone updated"`)
}

func TestGetLoggerFallback(t *testing.T) {
	resetGlobalLogger()
	assert.NotNil(t, GetLogger())
}
