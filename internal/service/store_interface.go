package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// Store is an interface that abstracts user and bet persistence
// This allows for easier testing and mocking
type Store interface {
	GetOrCreateUser(ctx context.Context, userID string, initialBalance decimal.Decimal) (decimal.Decimal, error)
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)
	PlaceBet(ctx context.Context, bet *models.Bet) error
	SettleBet(ctx context.Context, bet *models.Bet, status models.BetStatus, payout decimal.Decimal) error
	ListActiveBetsByMatch(ctx context.Context, matchID string) ([]*models.Bet, error)
	ListBetsByUser(ctx context.Context, userID string) ([]*models.Bet, error)
	Ping(ctx context.Context) error
}
