package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ResolveOutputDir expands a leading ~ in dir and makes it absolute
func ResolveOutputDir(dir string) (string, error) {
	if err := ValidateRequired("outputDir", dir); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(ExpandHome(strings.TrimSpace(dir)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory %s: %w", dir, err)
	}
	return abs, nil
}
