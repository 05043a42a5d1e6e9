package service

import (
	"context"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// MarketCache is an interface that abstracts the market snapshot cache
// This allows for easier testing and mocking
type MarketCache interface {
	SetSnapshot(ctx context.Context, markets []models.Market) error
	GetSnapshot(ctx context.Context) (markets []models.Market, stale bool, err error)
	GetMarket(ctx context.Context, matchID string) (*models.Market, error)
	Ping(ctx context.Context) error
	Close() error
}
