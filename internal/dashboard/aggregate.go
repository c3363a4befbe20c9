package dashboard

import (
	"sort"

	"github.com/hypecli/hype-cli/internal/cloud/hype"
)

// SubTypeTotal is the total amount moved for one transaction type
type SubTypeTotal struct {
	SubType string
	Amount  float64
}

// SubTypeCount is the number of incoming and outgoing movements for one
// transaction type
type SubTypeCount struct {
	SubType string
	In      int
	Out     int
}

// TotalsBySubType sums movement amounts per transaction type, sorted by
// amount descending
func TotalsBySubType(movements []hype.Movement) []SubTypeTotal {
	totals := map[string]float64{}
	for _, movement := range movements {
		totals[movement.SubType] += movement.Amount
	}

	out := make([]SubTypeTotal, 0, len(totals))
	for subType, amount := range totals {
		out = append(out, SubTypeTotal{subType, amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].SubType < out[j].SubType
	})
	return out
}

// CountsBySubType counts incoming and outgoing movements per transaction
// type, sorted by type name
func CountsBySubType(movements []hype.Movement) []SubTypeCount {
	counts := map[string]*SubTypeCount{}
	for _, movement := range movements {
		count, ok := counts[movement.SubType]
		if !ok {
			count = &SubTypeCount{SubType: movement.SubType}
			counts[movement.SubType] = count
		}
		if movement.Income {
			count.In++
		} else {
			count.Out++
		}
	}

	out := make([]SubTypeCount, 0, len(counts))
	for _, count := range counts {
		out = append(out, *count)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubType < out[j].SubType
	})
	return out
}
