package keyword

import (
	"time"

	"searchads-go/pkg/searchads"
)

// Matching is deliberately case-sensitive: the API contract specifies
// upper-case values, and lowercase variants are treated as unknown.
var bidStrengthLevels = map[string]CompetitionLevel{
	"LOW":       CompetitionLow,
	"MEDIUM":    CompetitionMedium,
	"HIGH":      CompetitionHigh,
	"VERY_HIGH": CompetitionVeryHigh,
}

// Normalizer maps raw API responses into Records.
type Normalizer struct {
	now func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// Normalize converts a raw response into internal records. A nil
// response or one without the data field yields an empty slice, never
// an error: a malformed body is indistinguishable from no results.
func (n *Normalizer) Normalize(resp *searchads.Response) []Record {
	if resp == nil || resp.Data == nil {
		return []Record{}
	}

	stamp := n.now().UTC()
	records := make([]Record, 0, len(resp.Data))
	for _, item := range resp.Data {
		record := Record{
			ID:               item.ID,
			Keyword:          item.Keyword,
			SearchPopularity: item.SearchPopularity,
			CompetitionLevel: MapCompetitionLevel(item.BidStrength),
			Category:         item.Category,
			LastUpdated:      stamp,
		}

		// Only materialize the bid range when the API sent one; a
		// zeroed object would be indistinguishable from a real $0 bid.
		if item.SuggestedBidAmount != nil {
			currency := item.SuggestedBidAmount.Currency
			if currency == "" {
				currency = "USD"
			}
			record.SuggestedBidRange = &BidRange{
				Min:      item.SuggestedBidAmount.Min,
				Max:      item.SuggestedBidAmount.Max,
				Currency: currency,
			}
		}

		records = append(records, record)
	}

	return records
}

// MapCompetitionLevel translates the API's bidStrength indicator.
func MapCompetitionLevel(bidStrength string) CompetitionLevel {
	if level, ok := bidStrengthLevels[bidStrength]; ok {
		return level
	}
	return CompetitionMedium
}
