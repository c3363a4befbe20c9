package user

import (
	"strings"
)

// Credentials are the user credentials
type Credentials struct {
	Email     string
	Birthdate string
}

// Session is the CLI profile session
//
// Token and NewIDs authorize data requests, while Bin and Checksum allow the
// session to be renewed without re-entering credentials. DeviceID is the
// device identity the session was enrolled with and must be reused on renewal.
type Session struct {
	Token    string
	NewIDs   string
	Bin      string
	Checksum string
	DeviceID string
}

// Valid returns whether the session holds an authorization token
func (session Session) Valid() bool {
	return session.Token != ""
}

// RedactedBirthdate returns the user's birthdate with every segment but
// the final one redacted, so just enough remains to recognize the value
func (creds Credentials) RedactedBirthdate() string {
	idx := strings.LastIndexAny(creds.Birthdate, "-/")
	if idx == -1 {
		return Redact(creds.Birthdate)
	}
	return Redact(creds.Birthdate[:idx]) + creds.Birthdate[idx:]
}

// Redact replaces every character of the provided string with '*'
func Redact(s string) string {
	return strings.Repeat("*", len(s))
}
