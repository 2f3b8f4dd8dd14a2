package config

// Default app-store categories fetched when SEARCHADS_CATEGORIES is unset.
var DefaultCategories = []string{
	"games",
	"business",
	"productivity",
	"education",
	"entertainment",
	"finance",
	"health-fitness",
	"lifestyle",
	"social-networking",
	"utilities",
}

const DefaultBaseURL = "https://api.searchads.apple.com/api/v4"

type Config struct {
	Credentials CredentialsConfig `mapstructure:"credentials"`
	API         APIConfig         `mapstructure:"api"`
	Output      OutputConfig      `mapstructure:"output"`
	Job         JobConfig         `mapstructure:"job"`
}

// CredentialsConfig holds the Search Ads API signing identity.
// PrivateKey carries PEM text, either raw or base64-encoded.
type CredentialsConfig struct {
	ClientID   string `mapstructure:"client_id"`
	TeamID     string `mapstructure:"team_id"`
	KeyID      string `mapstructure:"key_id"`
	PrivateKey string `mapstructure:"private_key"`
}

type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	OrgID      string `mapstructure:"org_id"`
	CampaignID string `mapstructure:"campaign_id"`
	AdGroupID  string `mapstructure:"adgroup_id"`
	Limit      int    `mapstructure:"limit"`
	Timeout    int    `mapstructure:"timeout"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

type JobConfig struct {
	Categories   []string `mapstructure:"-"`
	DelaySeconds int      `mapstructure:"delay_seconds"`
}
