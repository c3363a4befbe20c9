package mock

import (
	"testing"

	"github.com/hypecli/hype-cli/internal/cli/user"
	u "github.com/hypecli/hype-cli/internal/utils/test"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile, err := user.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

// NewProfileFromTmpDir returns a new CLI profile with a random name
// and a current working directory based on a temporary directory
// along with the associated cleanup function
func NewProfileFromTmpDir(t *testing.T, name string) (*user.Profile, func()) {
	t.Helper()

	tmpDir, teardownTmpDir := u.NewTempDir(t, name)
	resetHomeDir := u.SetupHomeDir(t, tmpDir)

	profile := NewProfile(t)
	profile.WorkingDirectory = tmpDir

	return profile,
		func() {
			resetHomeDir()
			teardownTmpDir()
		}
}
