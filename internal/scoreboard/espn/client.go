package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/scoreboard"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches games from the ESPN scoreboard API and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// FetchGames retrieves the current scoreboard for one sport.
func (c *Client) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	path, ok := scoreboardPaths[sport]
	if !ok {
		return nil, fmt.Errorf("espn: unsupported sport %q", sport)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &scoreboard.RateLimitError{
			Provider:   "espn",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("espn: decoding scoreboard: %w", err)
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		game, err := mapEvent(ev, sport)
		if err != nil {
			// A single malformed event should not sink the scoreboard.
			if c.logger != nil {
				c.logger.Warn("skipping malformed event", "err", err)
			}
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
