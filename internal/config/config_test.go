package config

import (
	"path/filepath"
	"testing"
)

func TestOutputDir(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"default", "", DefaultOutputDir},
		{"from env", "/srv/projects", "/srv/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FILEGEN_OUTPUT", tt.env)
			if got := OutputDir(); got != tt.want {
				t.Errorf("OutputDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHistoryPath(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		t.Setenv("FILEGEN_HISTORY", "/tmp/runs.db")
		if got := HistoryPath(); got != "/tmp/runs.db" {
			t.Errorf("HistoryPath() = %q, want %q", got, "/tmp/runs.db")
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("FILEGEN_HISTORY", "")
		t.Setenv("XDG_DATA_HOME", "/data")
		want := filepath.Join("/data", "filegen", "history.db")
		if got := HistoryPath(); got != want {
			t.Errorf("HistoryPath() = %q, want %q", got, want)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("FILEGEN_HISTORY", "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)
		want := filepath.Join(home, ".local", "share", "filegen", "history.db")
		if got := HistoryPath(); got != want {
			t.Errorf("HistoryPath() = %q, want %q", got, want)
		}
	})
}
