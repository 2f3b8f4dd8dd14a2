package searchads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"searchads-go/pkg/logger"
)

type httpClient struct {
	config ClientConfig
	client *fasthttp.Client
	log    *logger.Logger
}

// NewClient creates a keyword recommendation client.
func NewClient(config ClientConfig) (Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if config.OrgID == "" {
		return nil, fmt.Errorf("org ID is required - set SEARCHADS_ORG_ID environment variable")
	}
	if config.Limit == 0 {
		config.Limit = 100
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	// Reusable client; the job issues ten sequential requests per run,
	// so connection reuse is all the tuning this needs.
	client := &fasthttp.Client{
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxIdleConnDuration: 90 * time.Second,
	}

	return &httpClient{
		config: config,
		client: client,
		log:    logger.GetLogger().WithField("component", "searchads_client"),
	}, nil
}

// FindKeywords issues one authenticated find call scoped to category.
// Any transport or non-2xx failure is returned as an error carrying the
// response body when one is present; the caller decides whether that is
// fatal (it is not: categories are skipped independently).
func (c *httpClient) FindKeywords(ctx context.Context, category, token string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := FindRequest{
		Pagination: Pagination{Offset: 0, Limit: c.config.Limit},
		Selector: Selector{
			OrderBy: []Sort{
				{Field: "relevance", SortOrder: "DESCENDING"},
			},
			Conditions: []Condition{
				{Field: "keywordText", Operator: "CONTAINS", Values: []string{category}},
			},
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	url := fmt.Sprintf("%s/campaigns/%s/adgroups/%s/targetingkeywords/find",
		c.config.BaseURL, c.config.CampaignID, c.config.AdGroupID)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-AP-Context", "orgId="+c.config.OrgID)
	req.SetBody(jsonData)

	c.log.WithFields(map[string]interface{}{
		"category": category,
		"limit":    c.config.Limit,
	}).Debug("Sending keyword find request")

	if err := c.client.DoTimeout(req, resp, c.config.Timeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("API returned status %d: %s", status, string(resp.Body()))
	}

	var parsed Response
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.WithFields(map[string]interface{}{
		"category": category,
		"count":    len(parsed.Data),
	}).Debug("Keyword find request completed")

	return &parsed, nil
}
