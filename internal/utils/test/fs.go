package testutils

import (
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// NewTempDir constructs a new temporary directory and returns its path
// along with a cleanup function
func NewTempDir(t *testing.T, name string) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", name)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %s", err)
	}
	return dir, func() { os.RemoveAll(dir) }
}

// SetupHomeDir points $HOME at the provided directory for a test and
// returns a reset function. The home directory cache is disabled so
// profiles created during the test land in the redirected home.
func SetupHomeDir(t *testing.T, newHome string) func() {
	t.Helper()

	origHome, origHomeSet := os.LookupEnv("HOME")

	homedir.DisableCache = true
	if err := os.Setenv("HOME", newHome); err != nil {
		t.Fatalf("failed to set $HOME: %s", err)
	}

	return func() {
		homedir.DisableCache = false
		if origHomeSet {
			_ = os.Setenv("HOME", origHome)
		} else {
			_ = os.Unsetenv("HOME")
		}
	}
}
