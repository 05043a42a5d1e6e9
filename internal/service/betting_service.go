package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/metrics"
	"github.com/cypherlabdev/bet-simulator-service/internal/models"
	"github.com/cypherlabdev/bet-simulator-service/internal/store"
)

// BettingService orchestrates market reads and wager placement.
type BettingService struct {
	store          Store
	cache          MarketCache
	gateway        Gateway
	publisher      Publisher
	initialBalance decimal.Decimal
	logger         zerolog.Logger
}

// NewBettingService creates a new betting service
func NewBettingService(
	st Store,
	cache MarketCache,
	gateway Gateway,
	publisher Publisher,
	initialBalance decimal.Decimal,
	logger zerolog.Logger,
) *BettingService {
	return &BettingService{
		store:          st,
		cache:          cache,
		gateway:        gateway,
		publisher:      publisher,
		initialBalance: initialBalance,
		logger:         logger.With().Str("component", "betting_service").Logger(),
	}
}

// Markets returns the current market list, cache-first. When the feed is
// down and only an old snapshot exists, it is served with stale=true
// rather than failing the read.
func (s *BettingService) Markets(ctx context.Context) (markets []models.Market, stale bool, err error) {
	cached, cachedStale, cacheErr := s.cache.GetSnapshot(ctx)
	if cacheErr == nil && !cachedStale {
		return cached, false, nil
	}

	fresh, fetchErr := s.RefreshMarkets(ctx)
	if fetchErr == nil {
		return fresh, false, nil
	}

	if cacheErr == nil {
		s.logger.Warn().
			Err(fetchErr).
			Int("count", len(cached)).
			Msg("feed unavailable, serving stale market snapshot")
		return cached, true, nil
	}

	return nil, false, fetchErr
}

// RefreshMarkets fetches the current markets from the feed, folds the
// latest scores into them, and replaces the cached snapshot. A scores or
// cache write failure is logged but does not fail the refresh: odds and
// scores are separate endpoints, and stale completion flags just settle
// one cycle later.
func (s *BettingService) RefreshMarkets(ctx context.Context) ([]models.Market, error) {
	markets, err := s.gateway.FetchMarkets(ctx)
	if err != nil {
		metrics.FeedFailures.Inc()
		return nil, err
	}

	scores, err := s.gateway.FetchScores(ctx)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("scores unavailable, market statuses may lag")
	} else {
		for i := range markets {
			for _, sc := range scores {
				markets[i].ApplyScore(sc)
			}
		}
	}

	if err := s.cache.SetSnapshot(ctx, markets); err != nil {
		s.logger.Warn().
			Err(err).
			Int("count", len(markets)).
			Msg("failed to cache market snapshot")
	}

	return markets, nil
}

// PlaceBet places a wager for a user. The market lock is evaluated
// against the clock here, at placement time, so a market that passed its
// start time since the last page load still rejects the bet. The debit
// and the bet insert commit or roll back as one unit in the store.
func (s *BettingService) PlaceBet(ctx context.Context, userID, matchID string, outcome models.Outcome, amount decimal.Decimal) (*models.Bet, error) {
	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: unknown outcome %q", models.ErrInvalidBet, outcome)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrInvalidBet)
	}

	if _, err := s.store.GetOrCreateUser(ctx, userID, s.initialBalance); err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	market, err := s.market(ctx, matchID)
	if err != nil {
		// A feed outage is retryable, not the user's mistake.
		if errors.Is(err, models.ErrMarketDataUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: unknown market %s", models.ErrInvalidBet, matchID)
	}
	if market.Locked(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: market %s is locked", models.ErrInvalidBet, matchID)
	}

	bet := models.NewBet(userID, market, outcome, amount)

	if err := s.store.PlaceBet(ctx, bet); err != nil {
		switch {
		case errors.Is(err, store.ErrInsufficientBalance),
			errors.Is(err, store.ErrDuplicatePosition):
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidBet, err)
		default:
			return nil, fmt.Errorf("persist bet: %w", err)
		}
	}

	metrics.BetsPlaced.Inc()

	if err := s.publisher.PublishBetPlaced(ctx, models.BetPlacedEvent{
		BetID:     bet.ID.String(),
		UserID:    bet.UserID,
		MatchID:   bet.MatchID,
		Outcome:   bet.Outcome,
		Odds:      bet.Odds,
		Amount:    bet.Amount,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		// Event publishing never fails a placed bet.
		s.logger.Warn().
			Err(err).
			Str("bet_id", bet.ID.String()).
			Msg("failed to publish bet_placed event")
	}

	s.logger.Info().
		Str("bet_id", bet.ID.String()).
		Str("user_id", bet.UserID).
		Str("match_id", bet.MatchID).
		Str("outcome", string(bet.Outcome)).
		Str("amount", bet.Amount.String()).
		Str("odds", bet.Odds.String()).
		Msg("placed bet")

	return bet, nil
}

// Balance returns the user's balance, seeding a new user with the
// configured starting balance on first contact.
func (s *BettingService) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	return s.store.GetOrCreateUser(ctx, userID, s.initialBalance)
}

// ListBets returns the user's bet history.
func (s *BettingService) ListBets(ctx context.Context, userID string) ([]*models.Bet, error) {
	bets, err := s.store.ListBetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	return bets, nil
}

// MatchResult returns the current result for one match straight from the
// scores feed.
func (s *BettingService) MatchResult(ctx context.Context, matchID string) (models.MatchResult, error) {
	return s.gateway.FetchResult(ctx, matchID)
}

// market resolves a market by ID from the cached snapshot, falling back
// to a feed refresh on a cache miss.
func (s *BettingService) market(ctx context.Context, matchID string) (*models.Market, error) {
	market, err := s.cache.GetMarket(ctx, matchID)
	if err == nil {
		return market, nil
	}

	markets, err := s.RefreshMarkets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range markets {
		if markets[i].ID == matchID {
			return &markets[i], nil
		}
	}
	return nil, fmt.Errorf("market %s not found", matchID)
}
