// Package logging builds the slog logger shared by every adapter.
// The terminal UI owns stdout, so logs go to a file when configured
// and are discarded otherwise; headless commands pass stderr as the
// fallback writer.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/facturo/facturo/internal/adapters/outbound/config"
)

// New returns a logger writing to cfg.LogFile when set, falling back
// to the given writer (pass io.Discard for the TUI, os.Stderr for
// headless commands). The returned close function releases the log
// file, if any.
func New(cfg config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: cfg.Level()}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closeFn, nil
}
