package mock

import (
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/cloud/hype"
)

// HypeClient is a mocked Hype client
type HypeClient struct {
	hype.Client
	LoginFn     func(creds user.Credentials, pin string) (hype.Enrollment, error)
	VerifyOTPFn func(enrollment hype.Enrollment, code string) (user.Session, error)
	RenewFn     func() (user.Session, error)
	ProfileFn   func() (hype.Profile, error)
	BalanceFn   func() (hype.Balance, error)
	CardFn      func() (hype.Card, error)
	MovementsFn func(limit int) (hype.Movements, error)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) Login(creds user.Credentials, pin string) (hype.Enrollment, error) {
	if hc.LoginFn != nil {
		return hc.LoginFn(creds, pin)
	}
	return hc.Client.Login(creds, pin)
}

// VerifyOTP calls the mocked VerifyOTP implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) VerifyOTP(enrollment hype.Enrollment, code string) (user.Session, error) {
	if hc.VerifyOTPFn != nil {
		return hc.VerifyOTPFn(enrollment, code)
	}
	return hc.Client.VerifyOTP(enrollment, code)
}

// Renew calls the mocked Renew implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) Renew() (user.Session, error) {
	if hc.RenewFn != nil {
		return hc.RenewFn()
	}
	return hc.Client.Renew()
}

// Profile calls the mocked Profile implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) Profile() (hype.Profile, error) {
	if hc.ProfileFn != nil {
		return hc.ProfileFn()
	}
	return hc.Client.Profile()
}

// Balance calls the mocked Balance implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) Balance() (hype.Balance, error) {
	if hc.BalanceFn != nil {
		return hc.BalanceFn()
	}
	return hc.Client.Balance()
}

// Card calls the mocked Card implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) Card() (hype.Card, error) {
	if hc.CardFn != nil {
		return hc.CardFn()
	}
	return hc.Client.Card()
}

// Movements calls the mocked Movements implementation if provided,
// otherwise the call falls back to the underlying hype.Client implementation.
// NOTE: this may panic if the underlying hype.Client is left undefined
func (hc HypeClient) Movements(limit int) (hype.Movements, error) {
	if hc.MovementsFn != nil {
		return hc.MovementsFn(limit)
	}
	return hc.Client.Movements(limit)
}
