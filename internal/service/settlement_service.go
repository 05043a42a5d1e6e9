package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-simulator-service/internal/metrics"
	"github.com/cypherlabdev/bet-simulator-service/internal/models"
	"github.com/cypherlabdev/bet-simulator-service/pkg/settle"
)

// SettlementService resolves all open wagers on completed matches. Each
// wager is settled at most once: the store's conditional status update
// is the gate, and an in-process per-match lock keeps overlapping sweeps
// from doing redundant work.
type SettlementService struct {
	store     Store
	gateway   Gateway
	engine    *settle.Engine
	publisher Publisher
	logger    zerolog.Logger

	mu         sync.Mutex
	matchLocks map[string]*sync.Mutex
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	st Store,
	gateway Gateway,
	engine *settle.Engine,
	publisher Publisher,
	logger zerolog.Logger,
) *SettlementService {
	return &SettlementService{
		store:      st,
		gateway:    gateway,
		engine:     engine,
		publisher:  publisher,
		logger:     logger.With().Str("component", "settlement_service").Logger(),
		matchLocks: make(map[string]*sync.Mutex),
	}
}

// Summary reports what one settlement pass over a match did.
type Summary struct {
	MatchID  string
	Result   models.MatchOutcome
	Settled  int // bets transitioned by this pass
	Won      int
	Skipped  int // lost the conditional update race (already settled elsewhere)
	Failures int
}

// SettleMatch fetches the match result and settles every active wager on
// it. If the feed has not marked the match completed yet this is a
// no-op, not a failure; the caller retries on the next poll.
func (s *SettlementService) SettleMatch(ctx context.Context, matchID string) (Summary, error) {
	res, err := s.gateway.FetchResult(ctx, matchID)
	if err != nil {
		return Summary{MatchID: matchID}, err
	}
	return s.settleWithResult(ctx, res)
}

// Sweep scans the scores feed and settles every completed match that
// still has active wagers. Failures on one match do not stop the others.
func (s *SettlementService) Sweep(ctx context.Context) error {
	scores, err := s.gateway.FetchScores(ctx)
	if err != nil {
		metrics.FeedFailures.Inc()
		return err
	}

	var errs []error
	for _, sc := range scores {
		res := sc.Result()
		if !res.Completed {
			continue
		}
		if _, err := s.settleWithResult(ctx, res); err != nil {
			s.logger.Error().
				Err(err).
				Str("match_id", sc.ID).
				Msg("settlement failed for match")
			errs = append(errs, err)
		}
	}

	metrics.SettlementSweeps.Inc()
	return errors.Join(errs...)
}

// settleWithResult settles all active wagers on one match against an
// already-fetched result.
func (s *SettlementService) settleWithResult(ctx context.Context, res models.MatchResult) (Summary, error) {
	summary := Summary{MatchID: res.MatchID}

	result, ok := res.Outcome()
	if !ok {
		return summary, nil
	}
	summary.Result = result

	lock := s.matchLock(res.MatchID)
	lock.Lock()
	defer lock.Unlock()

	bets, err := s.store.ListActiveBetsByMatch(ctx, res.MatchID)
	if err != nil {
		return summary, err
	}
	if len(bets) == 0 {
		return summary, nil
	}

	decisions := s.engine.ResolveAll(bets, result)

	var errs []error
	for i, bet := range bets {
		if bet.Status != models.BetActive {
			continue
		}
		decision := decisions[i]

		err := s.store.SettleBet(ctx, bet, decision.Status, decision.Payout)
		switch {
		case errors.Is(err, models.ErrSettlementConflict):
			// A concurrent settlement already resolved this bet.
			summary.Skipped++
			continue
		case err != nil:
			// One failed wager must not abort the rest of the sweep.
			s.logger.Error().
				Err(err).
				Str("bet_id", bet.ID.String()).
				Str("match_id", res.MatchID).
				Msg("failed to settle bet")
			summary.Failures++
			errs = append(errs, err)
			continue
		}

		summary.Settled++
		if decision.Status == models.BetWon {
			summary.Won++
		}
		metrics.BetsSettled.WithLabelValues(string(decision.Status)).Inc()

		if err := s.publisher.PublishBetSettled(ctx, models.BetSettledEvent{
			BetID:     bet.ID.String(),
			UserID:    bet.UserID,
			MatchID:   bet.MatchID,
			Status:    decision.Status,
			Payout:    decision.Payout,
			Result:    result,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			s.logger.Warn().
				Err(err).
				Str("bet_id", bet.ID.String()).
				Msg("failed to publish bet_settled event")
		}
	}

	s.logger.Info().
		Str("match_id", res.MatchID).
		Str("result", string(result)).
		Int("settled", summary.Settled).
		Int("won", summary.Won).
		Int("skipped", summary.Skipped).
		Int("failures", summary.Failures).
		Msg("settled match")

	return summary, errors.Join(errs...)
}

// matchLock returns the mutex serializing settlement of one match.
func (s *SettlementService) matchLock(matchID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.matchLocks[matchID]
	if !ok {
		lock = &sync.Mutex{}
		s.matchLocks[matchID] = lock
	}
	return lock
}
