// Package auth declares the session management surface the API client
// needs from the CLI profile.
package auth

import (
	"github.com/hypecli/hype-cli/internal/cli/user"
)

// Service is an auth service
type Service interface {
	Credentials() user.Credentials
	Session() user.Session
	SetSession(session user.Session)
	ClearSession()
	Save() error
}
