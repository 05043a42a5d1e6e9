// Package poller drives the periodic refresh cycle: pull fresh odds into
// the cache, then sweep the scores feed for completed matches to settle.
package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/bet-simulator-service/internal/service"
)

// Poller runs the market refresh and settlement sweep on an interval.
type Poller struct {
	betting    *service.BettingService
	settlement *service.SettlementService
	interval   time.Duration
	logger     zerolog.Logger
}

// New creates a poller.
func New(
	betting *service.BettingService,
	settlement *service.SettlementService,
	interval time.Duration,
	logger zerolog.Logger,
) *Poller {
	return &Poller{
		betting:    betting,
		settlement: settlement,
		interval:   interval,
		logger:     logger.With().Str("component", "poller").Logger(),
	}
}

// Run blocks until the context is cancelled, executing one cycle
// immediately and then one per interval. Cycle failures are logged and
// retried on the next tick; the loop itself never dies.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info().
		Dur("interval", p.interval).
		Msg("starting poll loop")

	p.cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("stopping poll loop")
			return
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

// cycle refreshes the market snapshot and runs one settlement sweep.
// The sweep runs even when the odds refresh fails: scores and odds are
// separate endpoints and one being down says nothing about the other.
func (p *Poller) cycle(ctx context.Context) {
	if _, err := p.betting.RefreshMarkets(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("market refresh failed")
	}

	if err := p.settlement.Sweep(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("settlement sweep finished with errors")
	}
}
