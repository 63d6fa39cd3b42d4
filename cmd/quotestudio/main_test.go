package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testStudio is an offline configuration in a temp dir: no remote
// providers, stores and overlay next to each other.
type testStudio struct {
	configDir string
	dataDir   string
}

func newTestStudio(t *testing.T) *testStudio {
	t.Helper()

	ts := &testStudio{configDir: t.TempDir(), dataDir: t.TempDir()}

	base := fmt.Sprintf(`app:
  environment: test
log:
  level: error
  format: text
services:
  quotes:
    disabled: true
storage:
  history_path: %q
  favorites_path: %q
catalog:
  overlay_path: %q
render:
  timezone: UTC
`,
		filepath.Join(ts.dataDir, "history.jsonl"),
		filepath.Join(ts.dataDir, "favorites.json"),
		ts.overlayPath(),
	)

	ts.writeFile(t, filepath.Join(ts.configDir, "base.yaml"), base)

	return ts
}

func (ts *testStudio) overlayPath() string {
	return filepath.Join(ts.dataDir, "quotes.yaml")
}

// writeProfile overrides the base config through configs/test.yaml.
func (ts *testStudio) writeProfile(t *testing.T, content string) {
	t.Helper()
	ts.writeFile(t, filepath.Join(ts.configDir, "test.yaml"), content)
}

func (ts *testStudio) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// run executes the root command with args and returns stdout.
func (ts *testStudio) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config-dir", ts.configDir, "--profile", "test"}, args...))

	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), err
}

// mustRun is run that fails the test on error.
func (ts *testStudio) mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := ts.run(t, args...)
	require.NoError(t, err, out)

	return out
}

// decode unmarshals --json output.
func decode[T any](t *testing.T, out string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)

	return v
}
