package service

import (
	"context"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// Gateway is an interface that abstracts the external odds/scores feed
// This allows for easier testing and mocking
type Gateway interface {
	FetchMarkets(ctx context.Context) ([]models.Market, error)
	FetchScores(ctx context.Context) ([]models.FeedScore, error)
	FetchResult(ctx context.Context, matchID string) (models.MatchResult, error)
}
