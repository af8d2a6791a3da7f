// Package logging sets up the session's slog logger. The TUI owns the
// terminal, so log output goes to a file; without --debug everything is
// discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const logFileName = "mend-debug.log"

var logFile *os.File

// Init configures the default slog logger. It returns a cleanup
// function that closes the log file.
func Init(debug bool) (func(), error) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", logFileName, err)
	}
	logFile = f

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
	slog.Info("debug logging enabled")

	return func() {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	}, nil
}
