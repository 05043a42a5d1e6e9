package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kafka topics for bet lifecycle events.
const (
	TopicBetPlaced  = "bet_placed"
	TopicBetSettled = "bet_settled"
)

// BetPlacedEvent is published after a wager is persisted.
type BetPlacedEvent struct {
	BetID     string          `json:"bet_id"`
	UserID    string          `json:"user_id"`
	MatchID   string          `json:"match_id"`
	Outcome   Outcome         `json:"outcome"`
	Odds      decimal.Decimal `json:"odds"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// BetSettledEvent is published once per wager when settlement resolves it.
type BetSettledEvent struct {
	BetID     string          `json:"bet_id"`
	UserID    string          `json:"user_id"`
	MatchID   string          `json:"match_id"`
	Status    BetStatus       `json:"status"`
	Payout    decimal.Decimal `json:"payout"`
	Result    MatchOutcome    `json:"result"`
	Timestamp time.Time       `json:"timestamp"`
}
