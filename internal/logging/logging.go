// Package logging builds the structured loggers used by the entry points.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w at the named level.
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// OpenFile returns a logger appending to path. An empty path discards all
// output. The returned close func is never nil.
func OpenFile(path, level, prefix string) (*log.Logger, func() error, error) {
	if path == "" {
		logger, err := New(io.Discard, level, prefix)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level, prefix)
	if err != nil {
		f.Close()
		return nil, func() error { return nil }, err
	}
	return logger, f.Close, nil
}
