package movements

import (
	"fmt"

	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/cloud/hype"
	"github.com/hypecli/hype-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagLimit      = "limit"
	flagLimitUsage = "specify the number of recent movements to list"
)

// set of movement table headers
const (
	headerDate     = "Date"
	headerTitle    = "Title"
	headerType     = "Type"
	headerCategory = "Category"
	headerAmount   = "Amount"
)

type inputs struct {
	Limit int
}

// Command is the `movements` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.inputs.Limit, flagLimit, hype.DefaultMovementsLimit, flagLimitUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	movements, movementsErr := clients.Hype.Movements(cmd.inputs.Limit)
	if movementsErr != nil {
		return movementsErr
	}

	flattened := movements.Flatten()
	if len(flattened) == 0 {
		ui.Print(terminal.NewTextLog("No movements found"))
		return nil
	}

	tableRows := make([]map[string]interface{}, 0, len(flattened))
	for _, movement := range flattened {
		amount := movement.Amount
		if !movement.Income {
			amount = -amount
		}
		tableRows = append(tableRows, map[string]interface{}{
			headerDate:     movement.Date,
			headerTitle:    movement.Title,
			headerType:     movement.SubType,
			headerCategory: movement.AdditionalInfo.Category.Name,
			headerAmount:   fmt.Sprintf("%.2f", amount),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d movements", len(flattened)),
		[]string{headerDate, headerTitle, headerType, headerCategory, headerAmount},
		tableRows...,
	))
	return nil
}
