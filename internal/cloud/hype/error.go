package hype

import (
	"errors"
	"fmt"
)

// set of response codes returned by the envelope endpoints
const (
	codeOK           = "200"
	codeInvalidToken = "401"
	codeExpiredToken = "007"
)

// ServerError is a Hype server error
type ServerError struct {
	Code    string
	Message string
}

func (se ServerError) Error() string {
	return fmt.Sprintf("server returned response %s: %s", se.Code, se.Message)
}

// ErrInvalidSession is returned when the user's session is expired or missing
type ErrInvalidSession struct{}

func (err ErrInvalidSession) Error() string {
	return "invalid session, please log in again"
}

// set of authentication errors
var (
	ErrLoginFailed         = errors.New("login failed")
	ErrOTPFailed           = errors.New("otp verification failed, please log in again")
	ErrRenewalFailed       = errors.New("session renewal failed")
	ErrMissingResponseCode = errors.New("missing response code from response")
)
