package login

import (
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail     = "email"
	inputFieldBirthdate = "birthdate"
	inputFieldPIN       = "pin"
)

type inputs struct {
	Email     string
	Birthdate string
	PIN       string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	creds := profile.Credentials()
	var questions []*survey.Question

	if i.Email == "" {
		if creds.Email == "" {
			questions = append(questions, &survey.Question{
				Name:   inputFieldEmail,
				Prompt: &survey.Input{Message: "Email"},
			})
		} else {
			i.Email = creds.Email
		}
	}

	if i.Birthdate == "" {
		if creds.Birthdate == "" {
			questions = append(questions, &survey.Question{
				Name:   inputFieldBirthdate,
				Prompt: &survey.Input{Message: "Birthdate (yyyy-mm-dd)"},
			})
		} else {
			i.Birthdate = creds.Birthdate
		}
	}

	// the PIN is always prompted for, never read from the profile
	questions = append(questions, &survey.Question{
		Name:   inputFieldPIN,
		Prompt: &survey.Password{Message: "PIN"},
	})

	return ui.Ask(i, questions...)
}
