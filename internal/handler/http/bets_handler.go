package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
	"github.com/cypherlabdev/bet-simulator-service/internal/service"
)

// userIDHeader carries the authenticated user resolved by the identity
// service in front of this API.
const userIDHeader = "X-User-ID"

// BetsHandler handles HTTP requests for markets, wagers, and results
type BetsHandler struct {
	betting    *service.BettingService
	settlement *service.SettlementService
	logger     zerolog.Logger
}

// NewBetsHandler creates a new bets HTTP handler
func NewBetsHandler(betting *service.BettingService, settlement *service.SettlementService, logger zerolog.Logger) *BetsHandler {
	return &BetsHandler{
		betting:    betting,
		settlement: settlement,
		logger:     logger.With().Str("component", "bets_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *BetsHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/markets - List current markets
	mux.HandleFunc("/api/v1/markets", h.handleMarkets)

	// POST /api/v1/bets - Place a wager
	mux.HandleFunc("/api/v1/bets", h.handlePlaceBet)

	// GET /api/v1/users/:user_id/bets - Bet history
	// GET /api/v1/users/:user_id/balance - Current balance
	mux.HandleFunc("/api/v1/users/", h.handleUsers)

	// GET  /api/v1/matches/:match_id/result - Result probe
	// POST /api/v1/matches/:match_id/settle - Trigger settlement now
	mux.HandleFunc("/api/v1/matches/", h.handleMatches)
}

// handleMarkets handles GET /api/v1/markets
func (h *BetsHandler) handleMarkets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	markets, stale, err := h.betting.Markets(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load markets")
		h.errorResponse(w, http.StatusServiceUnavailable, "market data unavailable")
		return
	}

	now := time.Now().UTC()
	views := make([]marketView, len(markets))
	for i, m := range markets {
		views[i] = marketView{
			Market: m,
			Status: m.Status(now),
		}
		if outcome, ok := m.Result(); ok {
			views[i].Outcome = outcome
		}
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":   len(views),
		"stale":   stale,
		"markets": views,
	})
}

// marketView is a market as served to clients, with the lifecycle status
// derived against the current clock and, for completed matches, the
// final outcome.
type marketView struct {
	models.Market
	Status  models.MarketStatus `json:"status"`
	Outcome models.MatchOutcome `json:"outcome,omitempty"`
}

// placeBetRequest is the POST /api/v1/bets request body
type placeBetRequest struct {
	MatchID string          `json:"match_id"`
	Outcome string          `json:"outcome"`
	Amount  decimal.Decimal `json:"amount"`
}

// handlePlaceBet handles POST /api/v1/bets
func (h *BetsHandler) handlePlaceBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		h.errorResponse(w, http.StatusUnauthorized, "no session")
		return
	}

	var req placeBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MatchID == "" {
		h.errorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	bet, err := h.betting.PlaceBet(r.Context(), userID, req.MatchID, models.Outcome(req.Outcome), req.Amount)
	if err != nil {
		if errors.Is(err, models.ErrInvalidBet) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, models.ErrMarketDataUnavailable) {
			h.errorResponse(w, http.StatusServiceUnavailable, "market data unavailable")
			return
		}
		h.logger.Error().
			Err(err).
			Str("user_id", userID).
			Str("match_id", req.MatchID).
			Msg("failed to place bet")
		h.errorResponse(w, http.StatusInternalServerError, "failed to place bet")
		return
	}

	h.jsonResponse(w, http.StatusCreated, bet)
}

// handleUsers handles GET /api/v1/users/:user_id/bets and
// GET /api/v1/users/:user_id/balance
func (h *BetsHandler) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/users/:user_id/{bets|balance}
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[0] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/users/:user_id/bets or /balance")
		return
	}

	userID := parts[0]

	switch parts[1] {
	case "bets":
		bets, err := h.betting.ListBets(r.Context(), userID)
		if err != nil {
			h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list bets")
			h.errorResponse(w, http.StatusInternalServerError, "failed to list bets")
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"user_id": userID,
			"count":   len(bets),
			"bets":    bets,
		})

	case "balance":
		balance, err := h.betting.Balance(r.Context(), userID)
		if err != nil {
			h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get balance")
			h.errorResponse(w, http.StatusInternalServerError, "failed to get balance")
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"user_id": userID,
			"balance": balance,
		})

	default:
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/users/:user_id/bets or /balance")
	}
}

// handleMatches handles GET /api/v1/matches/:match_id/result and
// POST /api/v1/matches/:match_id/settle
func (h *BetsHandler) handleMatches(w http.ResponseWriter, r *http.Request) {
	// Parse path: /api/v1/matches/:match_id/{result|settle}
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/matches/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[0] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/matches/:match_id/result or /settle")
		return
	}

	matchID := parts[0]

	switch {
	case parts[1] == "result" && r.Method == http.MethodGet:
		h.matchResult(w, r, matchID)
	case parts[1] == "settle" && r.Method == http.MethodPost:
		h.settleMatch(w, r, matchID)
	default:
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// matchResult serves the result probe for one match.
func (h *BetsHandler) matchResult(w http.ResponseWriter, r *http.Request, matchID string) {
	res, err := h.betting.MatchResult(r.Context(), matchID)
	if err != nil {
		h.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to fetch result")
		h.errorResponse(w, http.StatusServiceUnavailable, "market data unavailable")
		return
	}

	resp := map[string]interface{}{
		"match_id":  res.MatchID,
		"completed": res.Completed,
	}
	if outcome, ok := res.Outcome(); ok {
		resp["home_score"] = res.HomeScore
		resp["away_score"] = res.AwayScore
		resp["outcome"] = outcome
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// settleMatch triggers an immediate settlement pass for one match. An
// incomplete match settles nothing and reports settled=0; the poller
// retries it later anyway.
func (h *BetsHandler) settleMatch(w http.ResponseWriter, r *http.Request, matchID string) {
	summary, err := h.settlement.SettleMatch(r.Context(), matchID)
	if err != nil {
		h.logger.Error().Err(err).Str("match_id", matchID).Msg("settlement failed")
		h.errorResponse(w, http.StatusInternalServerError, "settlement failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"match_id": summary.MatchID,
		"result":   summary.Result,
		"settled":  summary.Settled,
		"won":      summary.Won,
		"skipped":  summary.Skipped,
	})
}

// jsonResponse writes a JSON response
func (h *BetsHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *BetsHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
