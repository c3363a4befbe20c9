package hype

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hypecli/hype-cli/internal/cli/user"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"
)

func TestClientProfile(t *testing.T) {
	session := user.Session{
		Token:    "token123",
		NewIDs:   "newids123",
		Bin:      "bin123",
		Checksum: "checksum123",
		DeviceID: "deadbeefhype",
	}

	t.Run("should fetch the profile with the session headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, profilePath, r.URL.Path)
			assert.Equal(t, "token123", r.Header.Get(headerToken))
			assert.Equal(t, "newids123", r.Header.Get(headerNewIDs))
			assert.Equal(t, appVersion, r.Header.Get(headerAppVersion))

			writeEnvelope(w, codeOK, "", map[string]string{"firstname": "mario", "lastname": "rossi"})
		}))
		defer server.Close()

		profile, err := NewAuthClient(server.URL, &testAuthService{session: session}).Profile()
		assert.Nil(t, err)
		assert.Equal(t, Profile{Firstname: "mario", Lastname: "rossi"}, profile)
	})

	t.Run("should error without a session", func(t *testing.T) {
		_, err := NewAuthClient("http://localhost", &testAuthService{}).Profile()
		assert.Equal(t, ErrInvalidSession{}, err)
	})

	t.Run("should surface a server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, "500", "something bad happened", nil)
		}))
		defer server.Close()

		_, err := NewAuthClient(server.URL, &testAuthService{session: session}).Profile()
		assert.Equal(t, ServerError{Code: "500", Message: "something bad happened"}, err)
	})

	t.Run("should error on a response without a response code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()

		_, err := NewAuthClient(server.URL, &testAuthService{session: session}).Profile()
		assert.Equal(t, ErrMissingResponseCode, err)
	})

	t.Run("should renew the session and retry once when the session is expired", func(t *testing.T) {
		var dataRequests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == enrollPath {
				form := captureForm(t, r)
				switch form["function"] {
				case functionLoginRenewal:
					http.SetCookie(w, &http.Cookie{Name: cookieToken, Value: "fresh"})
					http.SetCookie(w, &http.Cookie{Name: cookieNewIDs, Value: "freshids"})
					fmt.Fprint(w, `{"Check":"OK"}`)
				case functionEnrollBio:
					fmt.Fprint(w, `{"Bin":"bin456"}`)
				}
				return
			}

			dataRequests++
			if dataRequests == 1 {
				writeEnvelope(w, codeInvalidToken, "invalid token", nil)
				return
			}

			assert.Equal(t, "fresh", r.Header.Get(headerToken))
			writeEnvelope(w, codeOK, "", map[string]string{"firstname": "mario"})
		}))
		defer server.Close()

		authService := &testAuthService{session: session}

		profile, err := NewAuthClient(server.URL, authService).Profile()
		assert.Nil(t, err)
		assert.Equal(t, Profile{Firstname: "mario"}, profile)
		assert.Equal(t, 2, dataRequests)
		assert.Equal(t, "fresh", authService.session.Token)
	})

	t.Run("should clear the session when the renewal fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == enrollPath {
				fmt.Fprint(w, `{"Check":"KO"}`)
				return
			}
			writeEnvelope(w, codeExpiredToken, "expired token", nil)
		}))
		defer server.Close()

		authService := &testAuthService{session: session}

		_, err := NewAuthClient(server.URL, authService).Profile()
		assert.Equal(t, ErrInvalidSession{}, err)
		assert.True(t, authService.cleared, "session should be cleared after a failed renewal")
		assert.True(t, authService.saved, "cleared session should be persisted")
	})
}

func TestClientMovements(t *testing.T) {
	session := user.Session{Token: "token123", NewIDs: "newids123"}

	t.Run("should fetch movements with the requested limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/rest/m/last/7", r.URL.Path)
			writeEnvelope(w, codeOK, "", map[string]interface{}{
				"month": []map[string]interface{}{
					{"movements": []map[string]interface{}{
						{"title": "coffee", "subType": "PAYMENT", "amount": 1.2, "date": "2026-08-30", "income": false},
					}},
				},
			})
		}))
		defer server.Close()

		movements, err := NewAuthClient(server.URL, &testAuthService{session: session}).Movements(7)
		assert.Nil(t, err)

		flattened := movements.Flatten()
		assert.Equal(t, 1, len(flattened))
		assert.Equal(t, Movement{Title: "coffee", SubType: "PAYMENT", Amount: 1.2, Date: "2026-08-30"}, flattened[0])
	})

	t.Run("should fall back to the default limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, fmt.Sprintf(movementsPath, DefaultMovementsLimit), r.URL.Path)
			writeEnvelope(w, codeOK, "", map[string]interface{}{})
		}))
		defer server.Close()

		_, err := NewAuthClient(server.URL, &testAuthService{session: session}).Movements(0)
		assert.Nil(t, err)
	})
}

func TestMovementsFlatten(t *testing.T) {
	movements := Movements{Months: []MonthMovements{
		{Movements: []Movement{
			{Title: "groceries", Date: "2026-08-02"},
			{Title: "salary", Date: "2026-08-01", Income: true},
		}},
		{Movements: []Movement{
			{Title: "rent", Date: "2026-07-01"},
		}},
	}}

	flattened := movements.Flatten()

	dates := make([]string, 0, len(flattened))
	for _, movement := range flattened {
		dates = append(dates, movement.Date)
	}
	assert.Equal(t, []string{"2026-07-01", "2026-08-01", "2026-08-02"}, dates)
}
