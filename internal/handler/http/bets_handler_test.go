package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/bet-simulator-service/internal/cache"
	"github.com/cypherlabdev/bet-simulator-service/internal/messaging"
	"github.com/cypherlabdev/bet-simulator-service/internal/mocks"
	"github.com/cypherlabdev/bet-simulator-service/internal/models"
	"github.com/cypherlabdev/bet-simulator-service/internal/service"
	"github.com/cypherlabdev/bet-simulator-service/internal/store"
	"github.com/cypherlabdev/bet-simulator-service/pkg/settle"
)

// handlerTestSetup wires real services over mocked feed and cache
type handlerTestSetup struct {
	ctrl    *gomock.Controller
	cache   *mocks.MockMarketCache
	gateway *mocks.MockGateway
	mux     *http.ServeMux
}

func setupHandlerTest(t *testing.T) *handlerTestSetup {
	ctrl := gomock.NewController(t)

	setup := &handlerTestSetup{
		ctrl:    ctrl,
		cache:   mocks.NewMockMarketCache(ctrl),
		gateway: mocks.NewMockGateway(ctrl),
	}

	st := store.NewMemory()
	betting := service.NewBettingService(
		st, setup.cache, setup.gateway, messaging.Nop{},
		decimal.NewFromInt(1000), zerolog.Nop(),
	)
	settlement := service.NewSettlementService(
		st, setup.gateway, settle.NewEngine(zerolog.Nop()), messaging.Nop{}, zerolog.Nop(),
	)

	handler := NewBetsHandler(betting, settlement, zerolog.Nop())
	setup.mux = http.NewServeMux()
	handler.RegisterRoutes(setup.mux)
	return setup
}

// TestHandleMarkets_Status tests that each market carries its derived
// lifecycle status and, once completed, the final outcome
func TestHandleMarkets_Status(t *testing.T) {
	setup := setupHandlerTest(t)

	now := time.Now().UTC()
	markets := []models.Market{
		{
			ID:        "upcoming",
			HomeTeam:  "FC Porto",
			AwayTeam:  "Benfica",
			StartTime: now.Add(time.Hour),
			Odds:      models.DefaultOdds(),
		},
		{
			ID:        "in-play",
			HomeTeam:  "Braga",
			AwayTeam:  "Arouca",
			StartTime: now.Add(-30 * time.Minute),
			Odds:      models.DefaultOdds(),
		},
		{
			ID:        "finished",
			HomeTeam:  "Estoril",
			AwayTeam:  "Chaves",
			StartTime: now.Add(-3 * time.Hour),
			Odds:      models.DefaultOdds(),
			Completed: true,
			HomeScore: 2,
			AwayScore: 1,
		},
	}
	setup.cache.EXPECT().GetSnapshot(gomock.Any()).Return(markets, false, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/markets", nil)
	rec := httptest.NewRecorder()
	setup.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int  `json:"count"`
		Stale   bool `json:"stale"`
		Markets []struct {
			ID      string `json:"id"`
			Status  string `json:"status"`
			Outcome string `json:"outcome"`
		} `json:"markets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "pending", resp.Markets[0].Status)
	assert.Empty(t, resp.Markets[0].Outcome)
	assert.Equal(t, "live", resp.Markets[1].Status)
	assert.Equal(t, "completed", resp.Markets[2].Status)
	assert.Equal(t, "home_win", resp.Markets[2].Outcome)
}

// TestHandlePlaceBet_FeedOutage tests the retryable-outage status code
func TestHandlePlaceBet_FeedOutage(t *testing.T) {
	setup := setupHandlerTest(t)

	setup.cache.EXPECT().GetMarket(gomock.Any(), "match-1").Return(nil, cache.ErrEmpty)
	setup.gateway.EXPECT().FetchMarkets(gomock.Any()).Return(nil, models.ErrMarketDataUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bets",
		strings.NewReader(`{"match_id":"match-1","outcome":"home","amount":100}`))
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	setup.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code,
		"a feed outage is retryable, not a client error")
}

// TestHandlePlaceBet_InvalidBet tests the user-correctable status code
func TestHandlePlaceBet_InvalidBet(t *testing.T) {
	setup := setupHandlerTest(t)

	locked := &models.Market{
		ID:        "match-1",
		HomeTeam:  "FC Porto",
		AwayTeam:  "Benfica",
		StartTime: time.Now().Add(-time.Minute).UTC(),
		Odds:      models.DefaultOdds(),
	}
	setup.cache.EXPECT().GetMarket(gomock.Any(), "match-1").Return(locked, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bets",
		strings.NewReader(`{"match_id":"match-1","outcome":"home","amount":100}`))
	req.Header.Set(userIDHeader, "user-1")
	rec := httptest.NewRecorder()
	setup.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHandlePlaceBet_NoSession tests the missing user header
func TestHandlePlaceBet_NoSession(t *testing.T) {
	setup := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bets",
		strings.NewReader(`{"match_id":"match-1","outcome":"home","amount":100}`))
	rec := httptest.NewRecorder()
	setup.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
