package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
// Credential variables keep the names the Search Ads console documents.
var envBindings = map[string]string{
	"credentials.client_id":   "APPLE_SEARCH_ADS_CLIENT_ID",
	"credentials.team_id":     "APPLE_SEARCH_ADS_TEAM_ID",
	"credentials.key_id":      "APPLE_SEARCH_ADS_KEY_ID",
	"credentials.private_key": "APPLE_SEARCH_ADS_PRIVATE_KEY",
	"api.base_url":            "SEARCHADS_BASE_URL",
	"api.org_id":              "SEARCHADS_ORG_ID",
	"api.campaign_id":         "SEARCHADS_CAMPAIGN_ID",
	"api.adgroup_id":          "SEARCHADS_ADGROUP_ID",
	"api.limit":               "SEARCHADS_LIMIT",
	"api.timeout":             "SEARCHADS_TIMEOUT",
	"output.dir":              "SEARCHADS_OUTPUT_DIR",
	"job.categories":          "SEARCHADS_CATEGORIES",
	"job.delay_seconds":       "SEARCHADS_FETCH_DELAY",
}

// Load reads configuration from the environment and validates it.
// There is no config file: the job is driven entirely by CI secrets
// and a handful of defaulted knobs.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.limit", 100)
	v.SetDefault("api.timeout", 30)
	v.SetDefault("output.dir", ".")
	v.SetDefault("job.delay_seconds", 2)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Job.Categories = splitCategories(v.GetString("job.categories"))
	if len(config.Job.Categories) == 0 {
		config.Job.Categories = DefaultCategories
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	required := []struct {
		value string
		env   string
	}{
		{config.Credentials.ClientID, "APPLE_SEARCH_ADS_CLIENT_ID"},
		{config.Credentials.TeamID, "APPLE_SEARCH_ADS_TEAM_ID"},
		{config.Credentials.KeyID, "APPLE_SEARCH_ADS_KEY_ID"},
		{config.Credentials.PrivateKey, "APPLE_SEARCH_ADS_PRIVATE_KEY"},
		{config.API.OrgID, "SEARCHADS_ORG_ID"},
		{config.API.CampaignID, "SEARCHADS_CAMPAIGN_ID"},
		{config.API.AdGroupID, "SEARCHADS_ADGROUP_ID"},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required environment variable %s", r.env)
		}
	}

	if config.API.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}

	if config.API.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if config.Job.DelaySeconds < 0 {
		return fmt.Errorf("delay_seconds cannot be negative")
	}

	if config.Output.Dir == "" {
		return fmt.Errorf("output dir cannot be empty")
	}

	return nil
}

func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}
