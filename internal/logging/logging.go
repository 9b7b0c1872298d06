// Package logging provides file-backed debug logging for quill.
// Stdout belongs to the live display, so diagnostic output goes to a log
// file under the storage directory instead.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New creates a logger writing to the specified path.
// If the path is empty, returns a disabled logger.
// Creates parent directories if they don't exist.
func New(logPath string) (zerolog.Logger, error) {
	if logPath == "" {
		return zerolog.Nop(), nil
	}

	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return zerolog.Nop(), fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("open log file: %w", err)
	}

	return zerolog.New(f).With().Timestamp().Logger(), nil
}
