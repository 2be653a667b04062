package logger

import (
	"greeting-service/internal/configs"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "greeting-service"

// console sink, also used when no configured sink is usable
var consoleOut io.Writer = os.Stderr

func newConsole() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        consoleOut,
		TimeFormat: "Jan _2 15:04:05.00000",
	}
}

func newRollingFile(cfg *configs.LogConfig) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Directory, 0744); err != nil {
		return nil, errors.Wrapf(err, "create log directory %s", cfg.Directory)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, cfg.Filename),
		MaxBackups: cfg.MaxBackups, // files
		MaxSize:    cfg.MaxSize,    // megabytes
		MaxAge:     cfg.MaxAge,     // days
	}, nil
}

func Init(cfg *configs.LogConfig) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zlog.Logger = New(cfg)
}

// New builds a logger writing to the sinks enabled in cfg. Output is never
// dropped: without a usable sink the logger falls back to the console.
func New(cfg *configs.LogConfig) zerolog.Logger {
	writers := make([]io.Writer, 0, 2)

	if cfg.ConsoleLoggingEnabled {
		writers = append(writers, newConsole())
	}

	var fileErr error
	if cfg.FileLoggingEnabled {
		file, err := newRollingFile(cfg)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, file)
		}
	}

	fallback := len(writers) == 0
	if fallback {
		writers = append(writers, newConsole())
	}

	logger := zerolog.
		New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.Level(cfg.Level)).
		With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Logger()

	if fileErr != nil {
		logger.Error().Err(fileErr).Msg("File logging disabled")
	}
	if fallback {
		logger.Warn().Msg("No log sink available, logging to console")
	}

	return logger
}
