package dashboard

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/dashboard"
	"github.com/hypecli/hype-cli/internal/local"
	"github.com/hypecli/hype-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagAddr      = "addr"
	flagAddrUsage = "specify the address the dashboard listens on"

	flagSnapshotDir      = "snapshot-dir"
	flagSnapshotDirUsage = "specify the directory to serve snapshots from"

	shutdownTimeout = 10 * time.Second
)

type inputs struct {
	Addr        string
	SnapshotDir string
}

// Command is the `dashboard` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Addr, flagAddr, dashboard.DefaultAddr, flagAddrUsage)
	fs.StringVar(&cmd.inputs.SnapshotDir, flagSnapshotDir, "", flagSnapshotDirUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	dir := cmd.inputs.SnapshotDir
	if dir == "" {
		dir = profile.SnapshotDir()
	}
	store := local.NewStore(dir)

	if !store.HasProfile() {
		ui.Print(terminal.NewWarningLog("No snapshots found in %s, run `%s pull` to populate the dashboard", dir, cli.Name))
	}

	server := dashboard.NewServer(cmd.inputs.Addr, store)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	ui.Print(terminal.NewTextLog("Serving dashboard at http://%s", cmd.inputs.Addr))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	select {
	case err := <-serverErr:
		return err
	case <-interrupt:
	}

	ui.Print(terminal.NewDebugLog("Shutting down dashboard"))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
