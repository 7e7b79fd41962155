package config

import (
	"os"
	"path/filepath"
)

const DefaultOutputDir = "."

// OutputDir returns the output directory from FILEGEN_OUTPUT env var,
// falling back to DefaultOutputDir.
func OutputDir() string {
	if env := os.Getenv("FILEGEN_OUTPUT"); env != "" {
		return env
	}
	return DefaultOutputDir
}

// HistoryPath returns the history database path from FILEGEN_HISTORY env var,
// falling back to filegen/history.db under the XDG data directory.
func HistoryPath() string {
	if env := os.Getenv("FILEGEN_HISTORY"); env != "" {
		return env
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "filegen", "history.db")
}
