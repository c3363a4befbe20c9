package hype

import (
	"net/http"

	"github.com/hypecli/hype-cli/internal/utils/api"
)

// Balance is the account balance document. The CLI treats it as opaque:
// it is snapshotted and rendered as-is.
type Balance map[string]interface{}

func (c *client) Balance() (Balance, error) {
	data, dataErr := c.doEnvelope(http.MethodGet, balancePath, api.RequestOptions{})
	if dataErr != nil {
		return nil, dataErr
	}
	return unmarshalDocument(data)
}
