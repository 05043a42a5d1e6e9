package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
	"github.com/cypherlabdev/bet-simulator-service/internal/teams"
)

const oddsResponse = `[
  {
    "id": "match-1",
    "sport_key": "soccer_portugal_primeira_liga",
    "commence_time": "2026-09-05T19:00:00Z",
    "home_team": "FC Porto",
    "away_team": "Benfica",
    "bookmakers": [
      {
        "key": "pinnacle",
        "title": "Pinnacle",
        "markets": [
          {
            "key": "h2h",
            "outcomes": [
              {"name": "FC Porto", "price": 2.5},
              {"name": "Benfica", "price": 2.8},
              {"name": "Draw", "price": 3.2}
            ]
          }
        ]
      }
    ]
  },
  {
    "id": "match-2",
    "commence_time": "2026-09-06T19:00:00Z",
    "home_team": "Braga",
    "away_team": "Arouca",
    "bookmakers": []
  }
]`

const scoresResponse = `[
  {
    "id": "match-1",
    "completed": true,
    "home_team": "FC Porto",
    "away_team": "Benfica",
    "scores": [
      {"name": "FC Porto", "score": "2"},
      {"name": "Benfica", "score": "1"}
    ]
  },
  {
    "id": "match-3",
    "completed": false,
    "home_team": "Estoril",
    "away_team": "Chaves",
    "scores": null
  }
]`

// newTestClient points a Client at an httptest server
func newTestClient(serverURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:  serverURL,
		APIKey:   "test-key",
		SportKey: "soccer_portugal_primeira_liga",
		Region:   "eu",
		Timeout:  2 * time.Second,
		DaysFrom: 1,
	}, teams.NewResolver(), zerolog.Nop())
}

// TestFetchMarkets tests odds retrieval and market construction
func TestFetchMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v4/sports/soccer_portugal_primeira_liga/odds/")
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "h2h", r.URL.Query().Get("markets"))
		assert.Equal(t, "decimal", r.URL.Query().Get("oddsFormat"))
		w.Write([]byte(oddsResponse))
	}))
	defer server.Close()

	markets, err := newTestClient(server.URL).FetchMarkets(context.Background())

	require.NoError(t, err)
	require.Len(t, markets, 2)

	assert.Equal(t, "match-1", markets[0].ID)
	assert.True(t, markets[0].Odds.Home.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, "FC_Porto", markets[0].HomeTeamKey)
	assert.Equal(t, "Benfica", markets[0].AwayTeamKey)

	// No bookmakers falls back to default odds.
	assert.Equal(t, models.DefaultOdds(), markets[1].Odds)
}

// TestFetchMarkets_UpstreamError tests that feed failures map to the
// unavailability sentinel
func TestFetchMarkets_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchMarkets(context.Background())

	assert.ErrorIs(t, err, models.ErrMarketDataUnavailable)
}

// TestFetchMarkets_MalformedBody tests an unparsable feed response
func TestFetchMarkets_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchMarkets(context.Background())

	assert.ErrorIs(t, err, models.ErrMarketDataUnavailable)
}

// TestFetchScores tests scores retrieval
func TestFetchScores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v4/sports/soccer_portugal_primeira_liga/scores/")
		assert.Equal(t, "1", r.URL.Query().Get("daysFrom"))
		w.Write([]byte(scoresResponse))
	}))
	defer server.Close()

	scores, err := newTestClient(server.URL).FetchScores(context.Background())

	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.True(t, scores[0].Completed)
	assert.False(t, scores[1].Completed)
}

// TestFetchResult tests result lookup for a completed match
func TestFetchResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scoresResponse))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	res, err := client.FetchResult(context.Background(), "match-1")
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, 2, res.HomeScore)
	assert.Equal(t, 1, res.AwayScore)

	outcome, ok := res.Outcome()
	require.True(t, ok)
	assert.Equal(t, models.MatchHomeWin, outcome)
}

// TestFetchResult_UnknownMatch tests that an unknown match is not
// completed rather than an error
func TestFetchResult_UnknownMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	res, err := newTestClient(server.URL).FetchResult(context.Background(), "missing")

	require.NoError(t, err)
	assert.Equal(t, "missing", res.MatchID)
	assert.False(t, res.Completed)
}

// TestDoRequestWithRetry_NoRetryOn4xx tests that client errors fail fast
func TestDoRequestWithRetry_NoRetryOn4xx(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchScores(context.Background())

	assert.ErrorIs(t, err, models.ErrMarketDataUnavailable)
	assert.Equal(t, 1, calls, "4xx responses other than 429 must not be retried")
}

// TestDoRequestWithRetry_ContextCancelled tests cancellation during backoff
func TestDoRequestWithRetry_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := newTestClient(server.URL).FetchScores(ctx)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), retryDelay, "cancellation must interrupt the backoff wait")
}
