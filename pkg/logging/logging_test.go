package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()
			t.Cleanup(xdg.Reload)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "wasixfixture", "wasixfixture.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	assert.Equal(t, filepath.Join("/custom/state", "wasixfixture", "wasixfixture.log"), getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("fixture")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"fixture"`)
	assert.Contains(t, buf.String(), `"message":"test message"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := WithFields(map[string]interface{}{"root": "/tmp/tests/t0"})
	logger.Info().Msg("fields")

	assert.Contains(t, buf.String(), `"root":"/tmp/tests/t0"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "materialize")
	require.Contains(t, buf.String(), "Operation started")
	done()

	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"materialize"`)
}
