package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger builds the process logger from the global flags. The returned
// close function releases the log file, if any.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", flagLogFile, err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}

// gameLogger returns the logger handed to a frontend while it owns the
// terminal. Without a log file, output would corrupt the screen, so it is dropped.
func gameLogger(logger *log.Logger) *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	return logger
}
