//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spec-driven/specforge/internal/config"
	"github.com/spec-driven/specforge/internal/project"
	"github.com/spec-driven/specforge/internal/ui"
	"github.com/spec-driven/specforge/internal/wizard"
	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME; preferences live under .specforge/ here
	WorkDir string // working directory where projects get created
}

// setupTestEnv creates isolated temp directories, points HOME at a fresh
// sandbox, and moves into an empty working directory. Styling is disabled
// so transcripts compare as plain text.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()

	ui.SetEnabled(false)
	t.Cleanup(func() { ui.SetEnabled(true) })

	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(env.WorkDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	return env
}

// writePreferences writes ~/.specforge/config.yaml and reloads it.
func writePreferences(t *testing.T, env *testEnv, content string) {
	t.Helper()
	dir := filepath.Join(env.HomeDir, ".specforge")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating preferences dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing preferences: %v", err)
	}
	config.Load()
}

// runScaffold drives the full wizard -> builder -> reporter pipeline with
// scripted answers and returns the transcript.
func runScaffold(t *testing.T, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	inputs, err := wizard.Collect(strings.NewReader(input), &out, wizard.Defaults{Description: config.DescriptionDefault()})
	if err != nil {
		return out.String(), err
	}

	result, err := project.Create(*inputs, ".")
	if err != nil {
		return out.String(), err
	}

	project.PrintNextSteps(&out, result.Root, inputs.Tool)
	return out.String(), nil
}

// listFiles walks root and returns all regular files as slash-separated
// paths relative to root.
func listFiles(t *testing.T, root string) []string {
	t.Helper()

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

// readFile returns the file's contents, failing the test on error.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
