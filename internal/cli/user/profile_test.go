package user

import (
	"os"
	"strings"
	"testing"

	u "github.com/hypecli/hype-cli/internal/utils/test"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfile(t *testing.T) {
	tmpDir, teardownTmpDir := u.NewTempDir(t, "home")
	defer teardownTmpDir()

	teardownHomeDir := u.SetupHomeDir(t, tmpDir)
	defer teardownHomeDir()

	name := primitive.NewObjectID().Hex()

	profile, profileErr := NewProfile(name)
	assert.Nil(t, profileErr)

	creds := Credentials{Email: "user@example.com", Birthdate: "1990-01-31"}
	session := Session{
		Token:    "token123",
		NewIDs:   "newids123",
		Bin:      "bin123",
		Checksum: "checksum123",
		DeviceID: "deadbeefhype",
	}

	t.Run("should persist credentials and session across a reload", func(t *testing.T) {
		profile.SetCredentials(creds)
		profile.SetSession(session)
		assert.Nil(t, profile.Save())

		reloaded, reloadedErr := NewProfile(name)
		assert.Nil(t, reloadedErr)
		assert.Nil(t, reloaded.Load())

		assert.Equal(t, creds, reloaded.Credentials())
		assert.Equal(t, session, reloaded.Session())
	})

	t.Run("should never write the pin or an otp code to disk", func(t *testing.T) {
		contents, contentsErr := os.ReadFile(profile.Path())
		assert.Nil(t, contentsErr)

		assert.False(t, strings.Contains(string(contents), "pin"), "profile file should not hold a pin")
		assert.False(t, strings.Contains(string(contents), "otp"), "profile file should not hold an otp code")
	})

	t.Run("should clear the session but keep the credentials on logout", func(t *testing.T) {
		profile.ClearSession()
		assert.Nil(t, profile.Save())

		reloaded, reloadedErr := NewProfile(name)
		assert.Nil(t, reloadedErr)
		assert.Nil(t, reloaded.Load())

		assert.Equal(t, Session{}, reloaded.Session())
		assert.Equal(t, creds, reloaded.Credentials())
	})
}

func TestProfileResolveFlags(t *testing.T) {
	tmpDir, teardownTmpDir := u.NewTempDir(t, "home")
	defer teardownTmpDir()

	teardownHomeDir := u.SetupHomeDir(t, tmpDir)
	defer teardownHomeDir()

	t.Run("should fall back to the default base url", func(t *testing.T) {
		profile, profileErr := NewProfile(primitive.NewObjectID().Hex())
		assert.Nil(t, profileErr)

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, defaultBaseURL, profile.Flags.BaseURL)
	})

	t.Run("should prefer an explicitly set base url", func(t *testing.T) {
		profile, profileErr := NewProfile(primitive.NewObjectID().Hex())
		assert.Nil(t, profileErr)
		profile.Flags.BaseURL = "http://localhost:8080"

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, "http://localhost:8080", profile.Flags.BaseURL)
		assert.Equal(t, "http://localhost:8080", profile.BaseURL())
	})
}
