// Package settle contains the pure wager-resolution rules. It decides how
// a bet resolves against a completed match result; persisting that
// decision atomically is the settlement service's job.
package settle

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// Decision is the resolution of a single wager.
type Decision struct {
	Status models.BetStatus
	Payout decimal.Decimal
}

// Engine resolves wagers against match results.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine creates a settlement engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		logger: logger.With().Str("component", "settle_engine").Logger(),
	}
}

// Resolve decides the final state of one wager for a match result. The
// second return value is false when the bet is not active; settlement of
// an already-settled bet is a no-op, never an error.
func (e *Engine) Resolve(bet *models.Bet, res models.MatchOutcome) (Decision, bool) {
	if bet.Status != models.BetActive {
		return Decision{Status: bet.Status, Payout: decimal.Zero}, false
	}

	if bet.Outcome.Wins(res) {
		return Decision{Status: models.BetWon, Payout: bet.PotentialWin}, true
	}
	return Decision{Status: models.BetLost, Payout: decimal.Zero}, true
}

// ResolveAll resolves a batch of wagers against one match result and
// returns the decisions index-aligned with the input. Non-active bets
// come back unchanged with a zero payout.
func (e *Engine) ResolveAll(bets []*models.Bet, res models.MatchOutcome) []Decision {
	decisions := make([]Decision, len(bets))
	resolved := 0
	for i, bet := range bets {
		d, ok := e.Resolve(bet, res)
		decisions[i] = d
		if ok {
			resolved++
		}
	}

	e.logger.Debug().
		Str("result", string(res)).
		Int("input_count", len(bets)).
		Int("resolved_count", resolved).
		Msg("resolved wager batch")

	return decisions
}
