package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sourcehub/internal/config"
)

// Options describes where log lines go. The file sink writes every entry at
// Level in Format; the console sink only ever shows warnings and errors.
type Options struct {
	Level   string
	Format  string
	File    string
	Console io.Writer
}

// New builds a logger from opts. With no sink configured it discards output.
func New(opts Options) (*slog.Logger, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "console" && format != "json" {
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
	level := parseLevel(opts.Level)

	var sinks fanout
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			return nil, err
		}
		if format == "json" {
			sinks = append(sinks, newJSONHandler(f, level))
		} else {
			sinks = append(sinks, newLineHandler(f, level))
		}
	}
	if opts.Console != nil {
		sinks = append(sinks, newLineHandler(opts.Console, max(level, slog.LevelWarn)))
	}

	switch len(sinks) {
	case 0:
		return NewNop(), nil
	case 1:
		return slog.New(sinks[0]), nil
	default:
		return slog.New(sinks), nil
	}
}

// NewFromConfig logs to <log_dir>/sourcehub.log and echoes warnings to
// stderr, leaving stdout to command output.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "warn", Console: os.Stderr})
	}
	opts := Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Console: os.Stderr,
	}
	if cfg.Paths.LogDir != "" {
		opts.File = cfg.LogFilePath()
	}
	return New(opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

func newJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				return slog.String("ts", attr.Value.Time().UTC().Format(time.RFC3339))
			case slog.LevelKey:
				return slog.String("level", strings.ToLower(attr.Value.String()))
			}
			return attr
		},
	})
}
