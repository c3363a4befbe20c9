package logout

import (
	"testing"

	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"
	"github.com/hypecli/hype-cli/internal/utils/test/mock"
)

func TestLogoutHandler(t *testing.T) {
	profile, teardown := mock.NewProfileFromTmpDir(t, "logout_test")
	defer teardown()

	profile.SetCredentials(user.Credentials{Email: "user@example.com", Birthdate: "1990-01-31"})
	profile.SetSession(user.Session{
		Token:    "token123",
		NewIDs:   "newids123",
		Bin:      "bin123",
		Checksum: "checksum123",
		DeviceID: "deadbeefhype",
	})
	defer profile.ClearCredentials()

	out, ui := mock.NewUI()

	cmd := &Command{}
	assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))
	assert.Equal(t, "INFO  Successfully logged out\n", out.String()[13:])

	assert.Equal(t, user.Session{}, profile.Session())
	assert.Equal(t, "user@example.com", profile.Credentials().Email)
}
