package commands

import (
	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/commands/dashboard"
	"github.com/hypecli/hype-cli/internal/commands/login"
	"github.com/hypecli/hype-cli/internal/commands/logout"
	"github.com/hypecli/hype-cli/internal/commands/movements"
	"github.com/hypecli/hype-cli/internal/commands/pull"
	"github.com/hypecli/hype-cli/internal/commands/whoami"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Authenticate with your Hype account",
		Help: `Authenticate with your Hype account

Logs in with your email, birthdate and PIN, then completes two-factor
authentication with the OTP code delivered via SMS. The resulting session is
saved to your profile so subsequent commands can reuse and renew it.`,
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
		Help:        "Terminate the current user's session",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help:        "Display the current user's details",
	}
	Pull = cli.CommandDefinition{
		Command:     &pull.Command{},
		Use:         "pull",
		Aliases:     []string{"fetch"},
		Description: "Fetch account data and save it as local snapshots",
		Help: `Fetch account data and save it as local snapshots

Retrieves your profile, balance, card and recent movements and writes each of
them as a JSON snapshot to the local snapshot directory. The dashboard serves
its pages from these snapshots.`,
	}
	Movements = cli.CommandDefinition{
		Command:     &movements.Command{},
		Use:         "movements",
		Description: "List recent account movements",
		Help:        "List recent account movements",
	}
	Dashboard = cli.CommandDefinition{
		Command:     &dashboard.Command{},
		Use:         "dashboard",
		Description: "Serve the local account dashboard",
		Help: `Serve the local account dashboard

Starts a local web server that renders the saved account snapshots. Run
"hype-cli pull" first to populate the snapshot directory.`,
	}
)
