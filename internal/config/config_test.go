package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestFilePathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".specforge", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	Load()

	if got := DescriptionDefault(); got != "" {
		t.Errorf("DescriptionDefault() = %q, want empty", got)
	}
	if !ColorEnabled() {
		t.Error("ColorEnabled() = false, want true by default")
	}
	if got := MinVersion(); got != "" {
		t.Errorf("MinVersion() = %q, want empty", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writePrefs(t, home, "defaults:\n  description: A geology project\ncolor: false\nmin_version: 1.2.0\n")

	viper.Reset()
	Load()

	if got := DescriptionDefault(); got != "A geology project" {
		t.Errorf("DescriptionDefault() = %q, want %q", got, "A geology project")
	}
	if ColorEnabled() {
		t.Error("ColorEnabled() = true, want false")
	}
	if got := MinVersion(); got != "1.2.0" {
		t.Errorf("MinVersion() = %q, want %q", got, "1.2.0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()

	// Absence of the preferences file is not an error.
	Load()
	if !ColorEnabled() {
		t.Error("defaults should apply when no file exists")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func writePrefs(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".specforge")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
