package di

import (
	"log/slog"
	"os"

	"github.com/reposcout/reposcout/pkg/config"
)

// provideLogger creates a default structured logger implementation.
func provideLogger() Logger {
	return &slogAdapter{
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// provideLoggerWithConfig creates a logger configured from the logging
// config. Respects log level, format (text/json), verbose, and quiet.
func provideLoggerWithConfig(cfg *config.Config) Logger {
	if cfg == nil {
		return provideLogger()
	}

	var level slog.Level
	switch {
	case cfg.Logging.Quiet:
		level = slog.LevelWarn
	case cfg.Logging.Verbose:
		level = slog.LevelDebug
	default:
		switch cfg.Logging.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return &slogAdapter{logger: slog.New(handler)}
}

// slogAdapter adapts slog.Logger to implement our Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *slogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }
