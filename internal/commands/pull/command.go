package pull

import (
	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/local"
	"github.com/hypecli/hype-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagLimit      = "limit"
	flagLimitUsage = "specify the number of recent movements to fetch"

	flagSnapshotDir      = "snapshot-dir"
	flagSnapshotDirUsage = "specify the directory to write snapshots to"

	defaultLimit = 50
)

type inputs struct {
	Limit       int
	SnapshotDir string
}

// Command is the `pull` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.inputs.Limit, flagLimit, defaultLimit, flagLimitUsage)
	fs.StringVar(&cmd.inputs.SnapshotDir, flagSnapshotDir, "", flagSnapshotDirUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	dir := cmd.inputs.SnapshotDir
	if dir == "" {
		dir = profile.SnapshotDir()
	}
	store := local.NewStore(dir)

	s := ui.Spinner("Fetching account data...")
	s.Start()
	defer s.Stop()

	accountProfile, profileErr := clients.Hype.Profile()
	if profileErr != nil {
		return profileErr
	}
	if err := store.WriteProfile(accountProfile); err != nil {
		return err
	}

	balance, balanceErr := clients.Hype.Balance()
	if balanceErr != nil {
		return balanceErr
	}
	if err := store.WriteBalance(balance); err != nil {
		return err
	}

	card, cardErr := clients.Hype.Card()
	if cardErr != nil {
		return cardErr
	}
	if err := store.WriteCard(card); err != nil {
		return err
	}

	movements, movementsErr := clients.Hype.Movements(cmd.inputs.Limit)
	if movementsErr != nil {
		return movementsErr
	}
	if err := store.WriteMovements(movements); err != nil {
		return err
	}

	s.Stop()

	ui.Print(
		terminal.NewDebugLog("Fetched %d movements", len(movements.Flatten())),
		terminal.NewTextLog("Saved account snapshots to %s", store.Dir()),
	)
	return nil
}
