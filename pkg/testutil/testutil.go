// Package testutil provides small helpers shared by patchup's tests.
// All test data is defined inline in the tests themselves; these
// helpers only put it on disk in an isolated location.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteManifest writes a patch manifest with the given JSON content
// into a fresh temp directory and returns its path.
func WriteManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patches.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Chdir switches the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
