package hype

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/hypecli/hype-cli/internal/utils/api"
)

// DefaultMovementsLimit is the number of movements fetched when no limit
// is specified
const DefaultMovementsLimit = 5

// Movements is the recent movements document, grouped by month
type Movements struct {
	Months []MonthMovements `json:"month"`
}

// MonthMovements is a month's worth of movements
type MonthMovements struct {
	Movements []Movement `json:"movements"`
}

// Movement is a single account movement
type Movement struct {
	Title          string         `json:"title"`
	SubType        string         `json:"subType"`
	Amount         float64        `json:"amount"`
	Date           string         `json:"date"`
	Income         bool           `json:"income"`
	AdditionalInfo AdditionalInfo `json:"additionalInfo"`
}

// AdditionalInfo holds the movement metadata surfaced by the dashboard
type AdditionalInfo struct {
	Category Category `json:"category"`
}

// Category is a movement category
type Category struct {
	Name string `json:"name"`
}

// Flatten returns all movements across months, sorted by date ascending
func (m Movements) Flatten() []Movement {
	var movements []Movement
	for _, month := range m.Months {
		movements = append(movements, month.Movements...)
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date < movements[j].Date
	})
	return movements
}

func (c *client) Movements(limit int) (Movements, error) {
	if limit <= 0 {
		limit = DefaultMovementsLimit
	}

	data, dataErr := c.doEnvelope(http.MethodGet, fmt.Sprintf(movementsPath, limit), api.RequestOptions{})
	if dataErr != nil {
		return Movements{}, dataErr
	}

	var movements Movements
	if err := json.Unmarshal(data, &movements); err != nil {
		return Movements{}, err
	}
	return movements, nil
}
