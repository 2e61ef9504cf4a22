package config

const (
	envRedditBaseURL   = "REDDIT_BASE_URL"
	envRedditClientID  = "REDDIT_CLIENT_ID"
	envRedditSecret    = "REDDIT_CLIENT_SECRET"
	envRedditUserAgent = "REDDIT_USER_AGENT"
	envRedditRateRPS   = "REDDIT_RATE_RPS"

	defaultRedditUserAgent = "pressbox-service/1.0"
	defaultRedditRateRPS   = 1.0
)

// RedditConfig controls the forum search client.
// ClientID/ClientSecret are optional; without them the client uses the
// public JSON endpoints at the lower anonymous quota.
type RedditConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	UserAgent    string
	RateRPS      float64
}

func loadReddit() RedditConfig {
	return RedditConfig{
		BaseURL:      envOrDefault(envRedditBaseURL, ""),
		ClientID:     envOrDefault(envRedditClientID, ""),
		ClientSecret: envOrDefault(envRedditSecret, ""),
		UserAgent:    envOrDefault(envRedditUserAgent, defaultRedditUserAgent),
		RateRPS:      floatEnvOrDefault(envRedditRateRPS, defaultRedditRateRPS),
	}
}
