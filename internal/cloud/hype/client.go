// Package hype is a client for the unofficial Hype card API.
//
// Authentication is a three step dance against the enroll endpoint: a
// credential step, a bio enrollment that yields the renewal "bin", and an
// SMS OTP step that yields the session token, the "newids" cookie and the
// renewal checksum. Data endpoints wrap their payloads in a
// {responseCode, responseDescr, data} envelope.
package hype

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/hypecli/hype-cli/internal/auth"
	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/utils/api"
)

const (
	enrollPath    = "/v2/auth/hypeconnector.aspx"
	profilePath   = "/v1/rest/u/profile"
	balancePath   = "/v1/rest/u/balance"
	cardPath      = "/v1/rest/your/card"
	movementsPath = "/v1/rest/m/last/%d"

	headerToken      = "hype_token"
	headerNewIDs     = "newids"
	headerAppVersion = "App-Version"

	appVersion = "5.1.6"

	requestTimeout = 10 * time.Second
)

// Client is a Hype client
type Client interface {
	Login(creds user.Credentials, pin string) (Enrollment, error)
	VerifyOTP(enrollment Enrollment, code string) (user.Session, error)
	Renew() (user.Session, error)

	Profile() (Profile, error)
	Balance() (Balance, error)
	Card() (Card, error)
	Movements(limit int) (Movements, error)
}

// NewClient creates a new Hype client
func NewClient(baseURL string) Client {
	return newClient(baseURL, noopAuth{})
}

// NewAuthClient creates a new Hype client capable of managing the user's session
func NewAuthClient(baseURL string, authService auth.Service) Client {
	return newClient(baseURL, authService)
}

func newClient(baseURL string, authService auth.Service) *client {
	jar, _ := cookiejar.New(nil)
	return &client{
		baseURL:     baseURL,
		authService: authService,
		httpClient:  &http.Client{Timeout: requestTimeout, Jar: jar},
	}
}

type client struct {
	baseURL     string
	authService auth.Service

	// httpClient carries the cookie jar shared by the enrollment steps
	httpClient *http.Client
}

func (c *client) do(method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	if options.ContentType != "" {
		req.Header.Set(api.HeaderContentType, options.ContentType)
	}

	if options.UseAuth {
		session := c.authService.Session()
		if !session.Valid() {
			return nil, ErrInvalidSession{}
		}
		req.Header.Set(headerToken, session.Token)
		req.Header.Set(headerNewIDs, session.NewIDs)
		req.Header.Set(headerAppVersion, appVersion)
	}

	return c.httpClient.Do(req)
}

func (c *client) doForm(path string, form url.Values) (*http.Response, error) {
	options := api.RequestOptions{
		Body:        strings.NewReader(form.Encode()),
		ContentType: api.MediaTypeFormURLEncoded,
	}
	return c.do(http.MethodPost, path, options)
}

// doEnvelope performs an authenticated request against a data endpoint and
// unwraps the response envelope. An invalid session response triggers a
// single renewal followed by a retry.
func (c *client) doEnvelope(method, path string, options api.RequestOptions) (json.RawMessage, error) {
	options.UseAuth = true

	res, resErr := c.do(method, path, options)
	if resErr != nil {
		return nil, resErr
	}

	data, dataErr := unmarshalEnvelope(res)
	if dataErr == nil {
		return data, nil
	}

	if _, ok := dataErr.(ErrInvalidSession); !ok || options.PreventRenewal {
		return nil, dataErr
	}

	if _, err := c.Renew(); err != nil {
		c.authService.ClearSession()
		if saveErr := c.authService.Save(); saveErr != nil {
			return nil, ErrInvalidSession{}
		}
		return nil, ErrInvalidSession{}
	}

	options.PreventRenewal = true
	return c.doEnvelope(method, path, options)
}

func unmarshalEnvelope(res *http.Response) (json.RawMessage, error) {
	defer res.Body.Close()

	var envelope struct {
		ResponseCode  string          `json:"responseCode"`
		ResponseDescr string          `json:"responseDescr"`
		Data          json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	switch envelope.ResponseCode {
	case "":
		return nil, ErrMissingResponseCode
	case codeInvalidToken, codeExpiredToken:
		return nil, ErrInvalidSession{}
	case codeOK:
		return envelope.Data, nil
	default:
		return nil, ServerError{Code: envelope.ResponseCode, Message: envelope.ResponseDescr}
	}
}

type noopAuth struct{}

func (na noopAuth) Credentials() user.Credentials   { return user.Credentials{} }
func (na noopAuth) Session() user.Session           { return user.Session{} }
func (na noopAuth) SetSession(session user.Session) {}
func (na noopAuth) ClearSession()                   {}
func (na noopAuth) Save() error                     { return nil }
