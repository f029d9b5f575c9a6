// Package testutil holds fixtures and helpers shared by gantt tests.
//
// SetupTestDir follows the chdir-into-tempdir pattern used across the
// project's CLI tests, so relative chart paths such as gantt.svg land in a
// throwaway directory.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ScenarioA is a two-task input whose tasks run back to back.
const ScenarioA = "Design, 2024-01-01, 2024-01-03; Build, 2024-01-04, 2024-01-10"

// SetupTestDir moves the test into a fresh temp directory and returns its
// resolved path. The working directory is restored on cleanup.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}
