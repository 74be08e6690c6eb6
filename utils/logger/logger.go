package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide logger. main overrides it during startup;
// the init fallback keeps library code and tests from hitting a nil logger.
var Logger *slog.Logger

func init() {
	if Logger == nil {
		Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))
	}
}

// Init builds the JSON logger from environment configuration, installs it
// as the global and slog default, and returns it.
func Init() *slog.Logger {
	cfg := LoadLoggerConfigFromEnv()
	Logger = NewLoggerWithLevel(os.Stdout, cfg.ServiceName, cfg.Level)
	slog.SetDefault(Logger)

	return Logger
}

// NewLoggerWithLevel creates a JSON slog logger with the given minimum level.
func NewLoggerWithLevel(output io.Writer, serviceName, level string) *slog.Logger {
	var slogLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	options := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: false,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level and short field names keep log lines
			// compatible with the downstream log forwarder.
			switch a.Key {
			case slog.LevelKey:
				if level, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(level.String()))}
				}

				return a
			case slog.MessageKey:
				return slog.Attr{Key: "msg", Value: a.Value}
			default:
				return a
			}
		},
	}

	handler := slog.NewJSONHandler(output, options)

	return slog.New(handler).With("service", serviceName, "version", "1.0.0")
}
