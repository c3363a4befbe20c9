package hype

import (
	"encoding/json"
	"net/http"

	"github.com/hypecli/hype-cli/internal/utils/api"
)

// Profile is the account holder's profile
type Profile struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	UserType  string `json:"userType"`
}

func (c *client) Profile() (Profile, error) {
	data, dataErr := c.doEnvelope(http.MethodGet, profilePath, api.RequestOptions{})
	if dataErr != nil {
		return Profile{}, dataErr
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
