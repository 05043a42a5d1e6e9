// Package gateway is the read-only client for the external odds and
// scores feeds. All failures here are retryable: callers keep their last
// known-good snapshot and try again later.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
	"github.com/cypherlabdev/bet-simulator-service/internal/teams"
)

const (
	apiVersion = "v4"
	maxRetries = 3
	retryDelay = 2 * time.Second
)

// Client fetches odds and match results from The Odds API.
type Client struct {
	baseURL    string
	apiKey     string
	sportKey   string
	region     string
	daysFrom   int
	httpClient *http.Client
	resolver   *teams.Resolver
	logger     zerolog.Logger
}

// ClientConfig holds feed client configuration.
type ClientConfig struct {
	BaseURL  string // e.g. "https://api.the-odds-api.com"
	APIKey   string
	SportKey string // e.g. "soccer_portugal_primeira_liga"
	Region   string // e.g. "eu"
	Timeout  time.Duration
	DaysFrom int // scores lookback window in days
}

// NewClient creates a feed client with a bounded request timeout.
func NewClient(config ClientConfig, resolver *teams.Resolver, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:  config.BaseURL,
		apiKey:   config.APIKey,
		sportKey: config.SportKey,
		region:   config.Region,
		daysFrom: config.DaysFrom,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		resolver: resolver,
		logger:   logger.With().Str("component", "feed_client").Logger(),
	}
}

// FetchMarkets retrieves current head-to-head odds for all tracked
// matches and builds markets from them. Individual malformed records
// degrade to default odds; they never fail the whole fetch.
func (c *Client) FetchMarkets(ctx context.Context) ([]models.Market, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/odds/", c.baseURL, apiVersion, c.sportKey)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.region)
	params.Set("markets", "h2h")
	params.Set("oddsFormat", "decimal")

	body, err := c.doRequestWithRetry(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: fetch odds: %s", models.ErrMarketDataUnavailable, err)
	}

	var events []models.FeedEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("%w: parse odds response: %s", models.ErrMarketDataUnavailable, err)
	}

	fetchedAt := time.Now().UTC()
	markets := make([]models.Market, 0, len(events))
	for _, ev := range events {
		m := models.NewMarket(ev, fetchedAt)
		m.HomeTeamKey = c.resolver.Resolve(m.HomeTeam)
		m.AwayTeamKey = c.resolver.Resolve(m.AwayTeam)
		markets = append(markets, m)
	}

	c.logger.Debug().
		Int("count", len(markets)).
		Msg("fetched markets from odds feed")

	return markets, nil
}

// FetchScores retrieves recent completed and in-progress matches with
// their scores.
func (c *Client) FetchScores(ctx context.Context) ([]models.FeedScore, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/scores/", c.baseURL, apiVersion, c.sportKey)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("daysFrom", fmt.Sprintf("%d", c.daysFrom))
	params.Set("dateFormat", "iso")

	body, err := c.doRequestWithRetry(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: fetch scores: %s", models.ErrMarketDataUnavailable, err)
	}

	var scores []models.FeedScore
	if err := json.Unmarshal(body, &scores); err != nil {
		return nil, fmt.Errorf("%w: parse scores response: %s", models.ErrMarketDataUnavailable, err)
	}

	return scores, nil
}

// FetchResult returns the settlement-relevant result for one match. A
// match the scores feed does not know yet comes back with
// Completed=false, which settlement treats as "retry later".
func (c *Client) FetchResult(ctx context.Context, matchID string) (models.MatchResult, error) {
	scores, err := c.FetchScores(ctx)
	if err != nil {
		return models.MatchResult{}, err
	}

	for _, sc := range scores {
		if sc.ID == matchID {
			return sc.Result(), nil
		}
	}

	return models.MatchResult{MatchID: matchID}, nil
}

// doRequestWithRetry performs an HTTP GET with exponential backoff.
// Client errors other than 429 are not retried.
func (c *Client) doRequestWithRetry(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := retryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := c.doRequest(ctx, fullURL)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if httpErr, ok := err.(*httpError); ok {
			if httpErr.StatusCode >= 400 && httpErr.StatusCode < 500 && httpErr.StatusCode != http.StatusTooManyRequests {
				return nil, err
			}
		}

		c.logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Msg("feed request failed, retrying")
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// doRequest performs a single HTTP request.
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}

// httpError carries the status code so retry logic can distinguish
// client errors from transient failures.
type httpError struct {
	StatusCode int
	Message    string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
