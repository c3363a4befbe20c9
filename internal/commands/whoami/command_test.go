package whoami

import (
	"testing"

	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"
	"github.com/hypecli/hype-cli/internal/utils/test/mock"
)

func TestWhoamiHandler(t *testing.T) {
	t.Run("with no user credentials should print nothing to see", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "whoami_test")
		defer teardown()

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))
		assert.Equal(t, "INFO  No user is currently logged in\n", out.String()[13:])
	})

	t.Run("with user credentials but no active session should print the logged out user", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "whoami_test")
		defer teardown()
		profile.SetCredentials(user.Credentials{Email: "user@example.com", Birthdate: "1990-01-31"})
		defer profile.ClearCredentials()

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))
		assert.Equal(t, "INFO  The user, user@example.com, is not currently logged in\n", out.String()[13:])
	})

	t.Run("with an active session should print the user with a redacted birthdate", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "whoami_test")
		defer teardown()
		profile.SetCredentials(user.Credentials{Email: "user@example.com", Birthdate: "1990-01-31"})
		profile.SetSession(user.Session{Token: "token123", NewIDs: "newids123"})
		defer func() {
			profile.ClearCredentials()
			profile.ClearSession()
		}()

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))
		assert.Equal(t, "INFO  Currently logged in user: user@example.com (*******-31)\n", out.String()[13:])
	})
}
