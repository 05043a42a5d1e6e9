package service

import (
	"context"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// Publisher is an interface that abstracts bet event publishing
// This allows for easier testing and mocking
type Publisher interface {
	PublishBetPlaced(ctx context.Context, event models.BetPlacedEvent) error
	PublishBetSettled(ctx context.Context, event models.BetSettledEvent) error
}
