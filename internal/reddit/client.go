package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"pressbox-service/internal/domain"
)

const (
	defaultBaseURL   = "https://www.reddit.com"
	oauthBaseURL     = "https://oauth.reddit.com"
	tokenURL         = "https://www.reddit.com/api/v1/access_token"
	defaultUserAgent = "pressbox-service/1.0"
	defaultLimit     = 25
	maxLimit         = 100
)

// Config controls how the client reaches the Reddit API.
// ClientID/ClientSecret switch the client to app-only OAuth against
// oauth.reddit.com; without them the public JSON endpoints are used.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	UserAgent    string
	RateRPS      float64
	ResultLimit  int
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

// Client issues bounded, time-windowed searches against one forum at a time.
// It does not retry; callers re-trigger a top-level aggregation for freshness.
type Client struct {
	baseURL     string
	userAgent   string
	resultLimit int
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewClient constructs a Reddit client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	resultLimit := cfg.ResultLimit
	if resultLimit <= 0 || resultLimit > maxLimit {
		resultLimit = defaultLimit
	}
	rps := cfg.RateRPS
	if rps <= 0 {
		rps = 1
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if cfg.ClientID != "" && cfg.ClientSecret != "" {
			oauthConf := &clientcredentials.Config{
				ClientID:     cfg.ClientID,
				ClientSecret: cfg.ClientSecret,
				TokenURL:     tokenURL,
				AuthStyle:    oauth2.AuthStyleInHeader,
			}
			httpClient = oauthConf.Client(context.Background())
			httpClient.Timeout = 10 * time.Second
			if cfg.BaseURL == "" {
				baseURL = oauthBaseURL
			}
		} else {
			httpClient = &http.Client{Timeout: 10 * time.Second}
		}
	}

	return &Client{
		baseURL:     baseURL,
		userAgent:   userAgent,
		resultLimit: resultLimit,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		logger:      cfg.Logger,
	}
}

// Search returns posts from one subreddit matching query, restricted to the
// subreddit, newest first, created at or after since. Search is scoped to the
// past day upstream; since trims the window further (typically start of the
// local day).
func (c *Client) Search(ctx context.Context, subreddit, query string, since time.Time) ([]domain.Post, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	params.Set("restrict_sr", "1")
	params.Set("sort", "new")
	params.Set("t", "day")
	params.Set("limit", strconv.Itoa(c.resultLimit))

	endpoint := fmt.Sprintf("%s/r/%s/search.json?%s", c.baseURL, url.PathEscape(subreddit), params.Encode())

	var payload listing
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("reddit: searching r/%s: %w", subreddit, err)
	}

	cutoff := float64(since.Unix())
	posts := make([]domain.Post, 0, len(payload.Data.Children))
	for _, ch := range payload.Data.Children {
		if !since.IsZero() && ch.Data.CreatedUTC < cutoff {
			continue
		}
		posts = append(posts, ch.Data)
	}
	return posts, nil
}

// Comments returns the comment listing for a post, read-only. Sort is one of
// new, top, best, controversial; limit is capped at the API maximum.
func (c *Client) Comments(ctx context.Context, subreddit, postID, sort string, limit int) ([]domain.Comment, error) {
	if sort == "" {
		sort = "new"
	}
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}
	params := url.Values{}
	params.Set("sort", sort)
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/r/%s/comments/%s.json?%s",
		c.baseURL, url.PathEscape(subreddit), url.PathEscape(postID), params.Encode())

	// The comments endpoint returns [postListing, commentListing].
	var envelope []json.RawMessage
	if err := c.getJSON(ctx, endpoint, &envelope); err != nil {
		return nil, fmt.Errorf("reddit: fetching comments for r/%s/%s: %w", subreddit, postID, err)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("reddit: unexpected comments envelope (%d listings)", len(envelope))
	}

	var comments commentListing
	if err := json.Unmarshal(envelope[1], &comments); err != nil {
		return nil, fmt.Errorf("reddit: decoding comments: %w", err)
	}

	out := make([]domain.Comment, 0, len(comments.Data.Children))
	for _, ch := range comments.Data.Children {
		if ch.Kind != kindComment || ch.Data.Body == "" {
			continue
		}
		out = append(out, ch.Data)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, payload any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}
