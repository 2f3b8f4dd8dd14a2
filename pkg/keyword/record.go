package keyword

import "time"

// CompetitionLevel is the internal competitiveness scale. The API's
// bidStrength values map onto it; anything unrecognized reads as medium.
type CompetitionLevel string

const (
	CompetitionLow      CompetitionLevel = "low"
	CompetitionMedium   CompetitionLevel = "medium"
	CompetitionHigh     CompetitionLevel = "high"
	CompetitionVeryHigh CompetitionLevel = "very_high"
)

// Record is the stable internal keyword schema written to snapshots.
type Record struct {
	ID                string           `json:"id"`
	Keyword           string           `json:"keyword"`
	SearchPopularity  int              `json:"searchPopularity"`
	CompetitionLevel  CompetitionLevel `json:"competitionLevel"`
	SuggestedBidRange *BidRange        `json:"suggestedBidRange,omitempty"`
	Category          string           `json:"category"`
	LastUpdated       time.Time        `json:"lastUpdated"`
}

type BidRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}
