package mlbstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client fetches schedules and live feeds from the MLB Stats API and maps them to domain models.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an MLB Stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  ua,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchSchedule returns the MLB game ids scheduled on date.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	q := url.Values{}
	q.Set("sportId", sportIDMLB)
	q.Set("date", date)

	var payload scheduleResponse
	if err := c.getJSON(ctx, schedulePath, q, &payload); err != nil {
		return nil, fmt.Errorf("fetch schedule %s: %w", date, err)
	}
	return mapSchedule(payload), nil
}

// FetchGame returns the normalized live feed for gameID.
func (c *Client) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	var payload feedResponse
	if err := c.getJSON(ctx, fmt.Sprintf(feedPathFmt, gameID), nil, &payload); err != nil {
		return games.Feed{}, fmt.Errorf("fetch game %d: %w", gameID, err)
	}
	feed := mapFeed(payload)
	if feed.GameID == 0 {
		feed.GameID = gameID
	}
	return feed, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "mlbstats rate limited",
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
