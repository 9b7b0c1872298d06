// Package storage resolves the per-user directory where quill keeps its
// persisted data: the user config, conversation history, and debug logs.
package storage

import (
	"os"
	"path/filepath"
)

// appDir is the directory name used under the XDG data root.
const appDir = "quill"

// Dir returns the per-user data directory for quill.
// It honors XDG_DATA_HOME and falls back to ~/.local/share.
// The directory is not created; call EnsureDir for that.
func Dir() string {
	if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
		return filepath.Join(dataDir, appDir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDir)
	}
	return filepath.Join(home, ".local", "share", appDir)
}

// EnsureDir creates the per-user data directory if it does not exist
// and returns its path.
func EnsureDir() (string, error) {
	dir := Dir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
