//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // MIKRUS_HOME, holds config.yaml
	TemplatesDir string // user template sets
	ProjectDir   string // where generated files land
}

// setupTestEnv creates isolated temp directories and points MIKRUS_HOME at
// one of them so config reads and writes stay sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		ProjectDir:   t.TempDir(),
	}

	t.Setenv("MIKRUS_HOME", env.HomeDir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	return env
}

// resetConfig drops in-memory config so the next Load reads only the file.
func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
}

// writeTemplateSet creates <dir>/<name>/template.yaml and body.tmpl.
func writeTemplateSet(t *testing.T, dir, name, manifest, body string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, name, "template.yaml"), manifest)
	writeFile(t, filepath.Join(dir, name, "body.tmpl"), body)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
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
