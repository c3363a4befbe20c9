package whoami

import (
	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	creds := profile.Credentials()
	session := profile.Session()

	if creds.Email == "" {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	if !session.Valid() {
		ui.Print(terminal.NewTextLog("The user, %s, is not currently logged in", creds.Email))
		return nil
	}

	ui.Print(terminal.NewTextLog("Currently logged in user: %s (%s)", creds.Email, creds.RedactedBirthdate()))
	return nil
}
