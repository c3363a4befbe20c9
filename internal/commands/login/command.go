package login

import (
	"github.com/hypecli/hype-cli/internal/cli"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Birthdate, flagBirthdate, flagBirthdateShort, "", flagBirthdateUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	existingUser := profile.Credentials()

	if existingUser.Email != "" && existingUser.Email != cmd.inputs.Email {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s, would you like to proceed?",
			existingUser.Email,
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
		profile.ClearSession()
	}

	creds := user.Credentials{Email: cmd.inputs.Email, Birthdate: cmd.inputs.Birthdate}
	profile.SetCredentials(creds)

	enrollment, enrollmentErr := clients.Hype.Login(creds, cmd.inputs.PIN)
	if enrollmentErr != nil {
		return enrollmentErr
	}
	cmd.inputs.PIN = "" // drop the PIN as soon as the credential step is done

	ui.Print(terminal.NewTextLog("An OTP code has been sent to you via SMS"))

	var code string
	if err := ui.AskOne(&code, &survey.Input{Message: "OTP code"}); err != nil {
		return err
	}

	session, sessionErr := clients.Hype.VerifyOTP(enrollment, code)
	if sessionErr != nil {
		return sessionErr
	}

	profile.SetSession(session)
	return profile.Save()
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *user.Profile, ui terminal.UI) error {
	ui.Print(terminal.NewTextLog("Successfully logged in"))
	return nil
}
