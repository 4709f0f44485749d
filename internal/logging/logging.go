// Package logging builds the slog logger used by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/woozymasta/truthtable/internal/config"
)

// ParseLevel resolves debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return lvl, nil
}

// New returns a logger writing to w. verbose forces the debug level.
func New(cfg config.LogConfig, w io.Writer, verbose bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h), nil
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(cfg config.LogConfig, w io.Writer, verbose bool) (*slog.Logger, error) {
	logger, err := New(cfg, w, verbose)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)
	return logger, nil
}
