package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"startyparty-news/internal/config"
)

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a text logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Setup creates the process logger and installs it as the slog default.
// With interactive set, stderr is left alone: logs go to cfg.LogFile or
// nowhere. The returned func closes the log file, if any.
func Setup(cfg config.AppConfig, interactive bool) (*slog.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
		}
		w = f
		closer = f.Close
	case interactive:
		w = io.Discard
	}
	log := New(w, cfg.LogLevel)
	slog.SetDefault(log)
	return log, closer, nil
}
