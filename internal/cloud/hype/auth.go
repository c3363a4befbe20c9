package hype

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hypecli/hype-cli/internal/cli/user"

	"github.com/google/uuid"
)

// set of enroll endpoint functions
const (
	functionLoginFirstStep  = "FREE/LOGINFIRSTSTEP.SPR"
	functionLoginSecondStep = "FREE/LOGINSECONDSTEP.SPR"
	functionLoginRenewal    = "FREE/LOGINFIRSTSTEPFA.SPR"
	functionEnrollBio       = "INFO/ENROLLBIO.SPR"
)

const (
	platform = "IPHONE"

	cookieToken  = "token"
	cookieNewIDs = "newids"

	birthdateLayout     = "2006-01-02"
	birthdateWireLayout = "02/01/2006"
)

var deviceInfo = func() string {
	info, _ := json.Marshal(map[string]string{
		"jailbreak": "false",
		"osversion": "13.3.1",
		"model":     "iPhone11,2",
	})
	return string(info)
}()

// NewDeviceID generates a device identity for a new enrollment
func NewDeviceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "hype"
}

// Enrollment is the pending login state between the credential step and
// OTP verification
type Enrollment struct {
	Email    string
	DeviceID string
	Bin      string
}

// Login performs the credential step of the login dance. The returned
// Enrollment must be completed with VerifyOTP using the code delivered
// via SMS. The pin is forwarded unmodified and never stored.
func (c *client) Login(creds user.Credentials, pin string) (Enrollment, error) {
	dob, dobErr := wireBirthdate(creds.Birthdate)
	if dobErr != nil {
		return Enrollment{}, dobErr
	}

	deviceID := NewDeviceID()

	res, resErr := c.doForm(enrollPath, url.Values{
		"additionalinfo": []string{deviceInfo},
		"codiceinternet": []string{creds.Email},
		"datanascita":    []string{dob},
		"deviceid":       []string{deviceID},
		"function":       []string{functionLoginFirstStep},
		"pin":            []string{pin},
		"platform":       []string{platform},
	})
	if resErr != nil {
		return Enrollment{}, resErr
	}

	var payload struct {
		Check string `json:"Check"`
	}
	if err := unmarshalBody(res, &payload); err != nil {
		return Enrollment{}, fmt.Errorf("failed to parse response for login request: %w", err)
	}
	if payload.Check != "OK" {
		return Enrollment{}, ErrLoginFailed
	}

	bin, binErr := c.enrollBio(deviceID)
	if binErr != nil {
		return Enrollment{}, binErr
	}

	return Enrollment{Email: creds.Email, DeviceID: deviceID, Bin: bin}, nil
}

// VerifyOTP completes the login dance with the SMS OTP code and returns
// the authorized session
func (c *client) VerifyOTP(enrollment Enrollment, code string) (user.Session, error) {
	res, resErr := c.doForm(enrollPath, url.Values{
		"additionalinfo": []string{deviceInfo},
		"codiceinternet": []string{enrollment.Email},
		"deviceid":       []string{enrollment.DeviceID},
		"function":       []string{functionLoginSecondStep},
		"pwd":            []string{code},
		"platform":       []string{platform},
	})
	if resErr != nil {
		return user.Session{}, resErr
	}

	var payload struct {
		Check    string `json:"Check"`
		Checksum string `json:"Checksum"`
	}
	if err := unmarshalBody(res, &payload); err != nil {
		return user.Session{}, fmt.Errorf("failed to parse response for otp verification request: %w", err)
	}
	if payload.Check != "OK" {
		return user.Session{}, ErrOTPFailed
	}

	token, newIDs, cookieErr := c.sessionCookies()
	if cookieErr != nil {
		return user.Session{}, cookieErr
	}

	return user.Session{
		Token:    token,
		NewIDs:   newIDs,
		Bin:      enrollment.Bin,
		Checksum: payload.Checksum,
		DeviceID: enrollment.DeviceID,
	}, nil
}

// Renew renews the session using the bin and checksum captured at login,
// then persists the refreshed session through the auth service
func (c *client) Renew() (user.Session, error) {
	session := c.authService.Session()
	if session.Bin == "" || session.Checksum == "" {
		return user.Session{}, ErrInvalidSession{}
	}

	res, resErr := c.doForm(enrollPath, url.Values{
		"additionalinfo": []string{deviceInfo},
		"bin":            []string{session.Bin},
		"checksum":       []string{session.Checksum},
		"deviceid":       []string{session.DeviceID},
		"function":       []string{functionLoginRenewal},
		"platform":       []string{platform},
	})
	if resErr != nil {
		return user.Session{}, resErr
	}

	var payload struct {
		Check string `json:"Check"`
	}
	if err := unmarshalBody(res, &payload); err != nil {
		return user.Session{}, fmt.Errorf("failed to parse response for renewal request: %w", err)
	}
	if payload.Check != "OK" {
		return user.Session{}, ErrRenewalFailed
	}

	bin, binErr := c.enrollBio(session.DeviceID)
	if binErr != nil {
		return user.Session{}, binErr
	}

	token, newIDs, cookieErr := c.sessionCookies()
	if cookieErr != nil {
		return user.Session{}, cookieErr
	}

	renewed := user.Session{
		Token:    token,
		NewIDs:   newIDs,
		Bin:      bin,
		Checksum: session.Checksum,
		DeviceID: session.DeviceID,
	}

	c.authService.SetSession(renewed)
	if err := c.authService.Save(); err != nil {
		return user.Session{}, err
	}
	return renewed, nil
}

func (c *client) enrollBio(deviceID string) (string, error) {
	res, resErr := c.doForm(enrollPath, url.Values{
		"additionalinfo": []string{deviceInfo},
		"deviceid":       []string{deviceID},
		"function":       []string{functionEnrollBio},
		"platform":       []string{platform},
	})
	if resErr != nil {
		return "", resErr
	}

	var payload struct {
		ErrorMessage string `json:"ErrorMessage"`
		Bin          string `json:"Bin"`
	}
	if err := unmarshalBody(res, &payload); err != nil {
		return "", fmt.Errorf("failed to parse response for bio enrollment request: %w", err)
	}
	if payload.ErrorMessage != "" {
		return "", fmt.Errorf("server returned error: %s", payload.ErrorMessage)
	}
	if payload.Bin == "" {
		return "", fmt.Errorf("missing data in response for bio enrollment request")
	}
	return payload.Bin, nil
}

func (c *client) sessionCookies() (token, newIDs string, err error) {
	u, parseErr := url.Parse(c.baseURL)
	if parseErr != nil {
		return "", "", parseErr
	}

	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		switch cookie.Name {
		case cookieToken:
			token = cookie.Value
		case cookieNewIDs:
			newIDs = cookie.Value
		}
	}

	if token == "" || newIDs == "" {
		return "", "", fmt.Errorf("missing session cookies in enrollment response")
	}
	return token, newIDs, nil
}

func unmarshalBody(res *http.Response, out interface{}) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(out)
}

// wireBirthdate converts an ISO birthdate to the dd/MM/yyyy form the
// enroll endpoint expects. Values already in wire form pass through.
func wireBirthdate(birthdate string) (string, error) {
	if birthdate == "" {
		return "", nil
	}
	if t, err := time.Parse(birthdateLayout, birthdate); err == nil {
		return t.Format(birthdateWireLayout), nil
	}
	if _, err := time.Parse(birthdateWireLayout, birthdate); err == nil {
		return birthdate, nil
	}
	return "", fmt.Errorf("invalid birth date: %q", birthdate)
}
