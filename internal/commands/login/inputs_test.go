package login

import (
	"testing"

	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"
	"github.com/hypecli/hype-cli/internal/utils/test/mock"
)

func TestLoginInputs(t *testing.T) {
	t.Run("with email and birthdate flags should only prompt for the pin", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "login_inputs_test")
		defer teardown()

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("PIN")
			console.SendLine("12345")
			console.ExpectEOF()
		}()

		i := inputs{Email: "user@example.com", Birthdate: "1990-01-31"}
		err := i.Resolve(profile, ui)

		console.Tty().Close()
		<-doneCh

		assert.Nil(t, err)
		assert.Equal(t, inputs{Email: "user@example.com", Birthdate: "1990-01-31", PIN: "12345"}, i)
	})

	t.Run("without flags should prompt for every input", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "login_inputs_test")
		defer teardown()

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Email")
			console.SendLine("user@example.com")
			console.ExpectString("Birthdate")
			console.SendLine("1990-01-31")
			console.ExpectString("PIN")
			console.SendLine("12345")
			console.ExpectEOF()
		}()

		var i inputs
		err := i.Resolve(profile, ui)

		console.Tty().Close()
		<-doneCh

		assert.Nil(t, err)
		assert.Equal(t, inputs{Email: "user@example.com", Birthdate: "1990-01-31", PIN: "12345"}, i)
	})

	t.Run("should fall back to the profile credentials", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "login_inputs_test")
		defer teardown()
		profile.SetCredentials(user.Credentials{Email: "user@example.com", Birthdate: "1990-01-31"})
		defer profile.ClearCredentials()

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("PIN")
			console.SendLine("12345")
			console.ExpectEOF()
		}()

		var i inputs
		err := i.Resolve(profile, ui)

		console.Tty().Close()
		<-doneCh

		assert.Nil(t, err)
		assert.Equal(t, inputs{Email: "user@example.com", Birthdate: "1990-01-31", PIN: "12345"}, i)
	})
}
