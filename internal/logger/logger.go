// Package logger routes the standard logger to a file while the terminal is
// owned by Bubble Tea.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "tabgrid "

var debugEnabled atomic.Bool

// Init sends log output to path. An empty path discards all output.
// The returned closer must be closed on exit.
func Init(path string, debug bool) (io.Closer, error) {
	debugEnabled.Store(debug)

	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetFlags(log.Ltime | log.Lshortfile)
	return f, nil
}

// Debugf logs only when debug logging is enabled.
func Debugf(format string, args ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	_ = log.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
}

// Printf logs unconditionally.
func Printf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}
