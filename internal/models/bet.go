package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetStatus is the lifecycle state of a wager. The only legal transitions
// are active -> won and active -> lost, each exactly once.
type BetStatus string

const (
	BetActive BetStatus = "active"
	BetWon    BetStatus = "won"
	BetLost   BetStatus = "lost"
)

// Bet is one user's wager on a single market outcome. Odds and
// PotentialWin are snapshotted at placement time and never recomputed.
type Bet struct {
	ID           uuid.UUID       `json:"id"`
	UserID       string          `json:"user_id"`
	MatchID      string          `json:"match_id"`
	Outcome      Outcome         `json:"outcome"`
	Odds         decimal.Decimal `json:"odds"`
	Amount       decimal.Decimal `json:"amount"`
	PotentialWin decimal.Decimal `json:"potential_win"`
	Status       BetStatus       `json:"status"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	PlacedAt     time.Time       `json:"placed_at"`
	SettledAt    *time.Time      `json:"settled_at,omitempty"`
}

// NewBet creates an active bet with a fresh collision-free ID and the
// payout fixed at amount * odds.
func NewBet(userID string, market *Market, outcome Outcome, amount decimal.Decimal) *Bet {
	return &Bet{
		ID:           uuid.New(),
		UserID:       userID,
		MatchID:      market.ID,
		Outcome:      outcome,
		Odds:         market.Odds.ForOutcome(outcome),
		Amount:       amount,
		PotentialWin: amount.Mul(market.Odds.ForOutcome(outcome)),
		Status:       BetActive,
		HomeTeam:     market.HomeTeam,
		AwayTeam:     market.AwayTeam,
		PlacedAt:     time.Now().UTC(),
	}
}
