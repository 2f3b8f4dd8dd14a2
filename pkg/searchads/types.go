package searchads

import (
	"context"
	"time"
)

// FindRequest is the query body for the targetingkeywords/find endpoint.
type FindRequest struct {
	Pagination Pagination `json:"pagination"`
	Selector   Selector   `json:"selector"`
}

type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Selector struct {
	OrderBy    []Sort      `json:"orderBy"`
	Conditions []Condition `json:"conditions"`
}

type Sort struct {
	Field     string `json:"field"`
	SortOrder string `json:"sortOrder"`
}

type Condition struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Values   []string `json:"values"`
}

// Response is the parsed find response. Records live under "data";
// a response without that field is treated as empty downstream.
type Response struct {
	Data []RawKeyword `json:"data"`
}

// RawKeyword is a single recommendation as the API returns it.
type RawKeyword struct {
	ID                 string     `json:"id"`
	Keyword            string     `json:"keyword"`
	SearchPopularity   int        `json:"searchPopularity"`
	BidStrength        string     `json:"bidStrength"`
	SuggestedBidAmount *BidAmount `json:"suggestedBidAmount,omitempty"`
	Category           string     `json:"category"`
}

type BidAmount struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// ClientConfig holds the fixed endpoint coordinates. OrgID, CampaignID
// and AdGroupID are account-specific and must come from configuration;
// the API offers no discovery for them.
type ClientConfig struct {
	BaseURL    string
	OrgID      string
	CampaignID string
	AdGroupID  string
	Limit      int
	Timeout    time.Duration
}

// Client fetches keyword recommendations for one category per call.
type Client interface {
	FindKeywords(ctx context.Context, category, token string) (*Response, error)
}
