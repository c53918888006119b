package logging

import (
	"log/slog"
	"os"

	"github.com/parthpatel/ufcpredict/internal/pkg/config"
)

// SetupLogger configures the global logger for a service.
func SetupLogger(cfg *config.LoggingConfig, serviceName string) *slog.Logger {
	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})

	logger := slog.New(textHandler)
	logger = logger.With("service", serviceName)

	// Install as the global logger so package-level slog calls pick it up
	slog.SetDefault(logger)

	return logger
}

func parseLevel(level string) slog.Level {
	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
