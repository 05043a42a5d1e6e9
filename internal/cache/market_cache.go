package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

const snapshotKey = "markets:snapshot"

// ErrEmpty means no snapshot has been cached yet.
var ErrEmpty = fmt.Errorf("market snapshot not found in cache")

// MarketCache keeps the last known-good market snapshot in Redis. The
// snapshot is written without expiry: when the feed is down we would
// rather serve stale markets flagged as stale than none at all.
type MarketCache struct {
	client   *redis.Client
	staleTTL time.Duration
	logger   zerolog.Logger
}

// MarketCacheConfig holds Redis cache configuration
type MarketCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	StaleTTL time.Duration // snapshot age beyond which it is reported stale
}

// snapshot is the stored envelope.
type snapshot struct {
	Markets   []models.Market `json:"markets"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// NewMarketCache creates a new Redis-backed market cache
func NewMarketCache(config MarketCacheConfig, logger zerolog.Logger) *MarketCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &MarketCache{
		client:   client,
		staleTTL: config.StaleTTL,
		logger:   logger.With().Str("component", "market_cache").Logger(),
	}
}

// SetSnapshot replaces the cached market snapshot.
func (c *MarketCache) SetSnapshot(ctx context.Context, markets []models.Market) error {
	data, err := json.Marshal(snapshot{
		Markets:   markets,
		FetchedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Int("count", len(markets)).
		Msg("cached market snapshot")

	return nil
}

// GetSnapshot returns the cached markets and whether they are older than
// the configured staleness threshold.
func (c *MarketCache) GetSnapshot(ctx context.Context) ([]models.Market, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, ErrEmpty
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	stale := time.Since(snap.FetchedAt) > c.staleTTL
	return snap.Markets, stale, nil
}

// GetMarket returns one market from the cached snapshot.
func (c *MarketCache) GetMarket(ctx context.Context, matchID string) (*models.Market, error) {
	markets, _, err := c.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	for i := range markets {
		if markets[i].ID == matchID {
			return &markets[i], nil
		}
	}
	return nil, fmt.Errorf("market %s not found in cache", matchID)
}

// Ping checks Redis connection
func (c *MarketCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *MarketCache) Close() error {
	return c.client.Close()
}
