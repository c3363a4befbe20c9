package hype

import (
	"encoding/json"
	"net/http"

	"github.com/hypecli/hype-cli/internal/utils/api"
)

// Card is the card information document. Like Balance it is opaque to
// the CLI.
type Card map[string]interface{}

func (c *client) Card() (Card, error) {
	data, dataErr := c.doEnvelope(http.MethodGet, cardPath, api.RequestOptions{})
	if dataErr != nil {
		return nil, dataErr
	}
	return unmarshalDocument(data)
}

func unmarshalDocument(data json.RawMessage) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
