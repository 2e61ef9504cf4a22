package config

const (
	envESPNBaseURL = "ESPN_BASE_URL"

	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
)

// ESPNConfig controls how we talk to the ESPN scoreboard API.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}
