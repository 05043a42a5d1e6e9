package settle

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

func newTestEngine() *Engine {
	return NewEngine(zerolog.Nop())
}

func activeBet(outcome models.Outcome, amount, odds string) *models.Bet {
	amt := decimal.RequireFromString(amount)
	o := decimal.RequireFromString(odds)
	return &models.Bet{
		UserID:       "user-1",
		MatchID:      "match-1",
		Outcome:      outcome,
		Odds:         o,
		Amount:       amt,
		PotentialWin: amt.Mul(o),
		Status:       models.BetActive,
	}
}

// TestResolve_WinningBet tests a home bet on a home win
func TestResolve_WinningBet(t *testing.T) {
	engine := newTestEngine()
	bet := activeBet(models.OutcomeHome, "100", "2.5")

	decision, ok := engine.Resolve(bet, models.MatchHomeWin)

	require.True(t, ok)
	assert.Equal(t, models.BetWon, decision.Status)
	// 100 stake at 2.5 returns exactly 250: a 1000 balance that paid the
	// stake down to 900 ends at 1150.
	assert.True(t, decision.Payout.Equal(decimal.RequireFromString("250")),
		"got %s", decision.Payout)
}

// TestResolve_LosingBet tests a home bet on an away win
func TestResolve_LosingBet(t *testing.T) {
	engine := newTestEngine()
	bet := activeBet(models.OutcomeHome, "100", "2.5")

	decision, ok := engine.Resolve(bet, models.MatchAwayWin)

	require.True(t, ok)
	assert.Equal(t, models.BetLost, decision.Status)
	assert.True(t, decision.Payout.IsZero())
}

// TestResolve_DrawBet tests that a goalless draw pays the draw side only
func TestResolve_DrawBet(t *testing.T) {
	engine := newTestEngine()
	result := models.ScoreOutcome(0, 0)

	drawDecision, ok := engine.Resolve(activeBet(models.OutcomeDraw, "50", "3.2"), result)
	require.True(t, ok)
	assert.Equal(t, models.BetWon, drawDecision.Status)
	assert.True(t, drawDecision.Payout.Equal(decimal.RequireFromString("160")))

	homeDecision, ok := engine.Resolve(activeBet(models.OutcomeHome, "50", "2.5"), result)
	require.True(t, ok)
	assert.Equal(t, models.BetLost, homeDecision.Status)
}

// TestResolve_AlreadySettled tests the at-most-once guard
func TestResolve_AlreadySettled(t *testing.T) {
	engine := newTestEngine()

	for _, status := range []models.BetStatus{models.BetWon, models.BetLost} {
		bet := activeBet(models.OutcomeHome, "100", "2.5")
		bet.Status = status
		now := time.Now()
		bet.SettledAt = &now

		decision, ok := engine.Resolve(bet, models.MatchHomeWin)

		assert.False(t, ok, "settling a %s bet must be a no-op", status)
		assert.Equal(t, status, decision.Status, "terminal status is preserved")
		assert.True(t, decision.Payout.IsZero())
	}
}

// TestResolve_ExactDecimalPayout tests that payouts carry no float error
func TestResolve_ExactDecimalPayout(t *testing.T) {
	engine := newTestEngine()
	bet := activeBet(models.OutcomeAway, "0.1", "3.33")

	decision, ok := engine.Resolve(bet, models.MatchAwayWin)

	require.True(t, ok)
	assert.True(t, decision.Payout.Equal(decimal.RequireFromString("0.333")),
		"got %s", decision.Payout)
}

// TestResolveAll tests batch resolution over mixed bets
func TestResolveAll(t *testing.T) {
	engine := newTestEngine()

	settled := activeBet(models.OutcomeAway, "10", "2.8")
	settled.Status = models.BetLost

	bets := []*models.Bet{
		activeBet(models.OutcomeHome, "100", "2.5"),
		activeBet(models.OutcomeAway, "40", "2.8"),
		activeBet(models.OutcomeDraw, "20", "3.2"),
		settled,
	}

	decisions := engine.ResolveAll(bets, models.MatchHomeWin)

	require.Len(t, decisions, 4)
	assert.Equal(t, models.BetWon, decisions[0].Status)
	assert.True(t, decisions[0].Payout.Equal(decimal.RequireFromString("250")))
	assert.Equal(t, models.BetLost, decisions[1].Status)
	assert.Equal(t, models.BetLost, decisions[2].Status)
	assert.Equal(t, models.BetLost, decisions[3].Status, "already-settled bet keeps its status")
	assert.True(t, decisions[3].Payout.IsZero())
}

// TestResolveAll_Empty tests the empty batch
func TestResolveAll_Empty(t *testing.T) {
	decisions := newTestEngine().ResolveAll(nil, models.MatchDraw)
	assert.Empty(t, decisions)
}
