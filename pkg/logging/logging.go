// Package logging builds the service's slog loggers. Handlers write to
// stdout; the level and output format come from the [logging] config
// section, overridable through LOG_LEVEL and LOG_FORMAT.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Level is a logging severity name as it appears in configuration.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Bootstrap returns the logger used before configuration is loaded: JSON at
// info level, so startup failures are machine-readable even when the config
// file itself is the problem.
func Bootstrap() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// New builds the service logger from finalized configuration.
func New(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func (l Level) validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	}
	return fmt.Errorf("unknown log level %q", l)
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (f Format) validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown log format %q", f)
}
