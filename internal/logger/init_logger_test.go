package logger

import (
	"bytes"
	"greeting-service/internal/configs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := consoleOut
	consoleOut = &buf
	t.Cleanup(func() { consoleOut = prev })

	return &buf
}

func TestFileSinkAndLevel(t *testing.T) {
	console := captureConsole(t)
	dir := filepath.Join(t.TempDir(), "logs")

	log := New(&configs.LogConfig{
		Level:              int8(zerolog.WarnLevel),
		FileLoggingEnabled: true,
		Directory:          dir,
		Filename:           "greeting.log",
		MaxSize:            1,
	})

	log.Info().Msg("below level")
	log.Warn().Msg("kept in file")

	raw, err := os.ReadFile(filepath.Join(dir, "greeting.log"))
	require.NoError(t, err)

	assert.Contains(t, string(raw), "kept in file")
	assert.Contains(t, string(raw), `"service":"greeting-service"`)
	assert.NotContains(t, string(raw), "below level")
	assert.Empty(t, console.String())
}

func TestConsoleSink(t *testing.T) {
	console := captureConsole(t)

	log := New(&configs.LogConfig{
		Level:                 int8(zerolog.InfoLevel),
		ConsoleLoggingEnabled: true,
	})
	log.Debug().Msg("too verbose")
	log.Info().Msg("to console")

	assert.Contains(t, console.String(), "to console")
	assert.NotContains(t, console.String(), "too verbose")
}

func TestNoSinkFallsBackToConsole(t *testing.T) {
	console := captureConsole(t)

	log := New(&configs.LogConfig{Level: int8(zerolog.InfoLevel)})
	log.Info().Msg("still visible")

	assert.Contains(t, console.String(), "No log sink available")
	assert.Contains(t, console.String(), "still visible")
}

func TestBrokenLogDirectoryFallsBackToConsole(t *testing.T) {
	console := captureConsole(t)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))

	log := New(&configs.LogConfig{
		Level:              int8(zerolog.InfoLevel),
		FileLoggingEnabled: true,
		Directory:          filepath.Join(blocker, "logs"),
		Filename:           "greeting.log",
	})
	log.Info().Msg("after file failure")

	assert.Contains(t, console.String(), "File logging disabled")
	assert.Contains(t, console.String(), "after file failure")
}

func TestInitReplacesGlobalLogger(t *testing.T) {
	captureConsole(t)
	prev := zlog.Logger
	t.Cleanup(func() { zlog.Logger = prev })

	Init(&configs.LogConfig{
		Level:                 int8(zerolog.ErrorLevel),
		ConsoleLoggingEnabled: true,
	})

	assert.Equal(t, zerolog.ErrorLevel, zlog.Logger.GetLevel())
}
