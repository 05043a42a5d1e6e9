package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BetsPlaced counts successfully persisted wagers.
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betsim_bets_placed_total",
		Help: "Number of wagers placed.",
	})

	// BetsSettled counts resolved wagers by final status.
	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betsim_bets_settled_total",
		Help: "Number of wagers settled, by final status.",
	}, []string{"status"})

	// FeedFailures counts odds/scores feed fetch failures.
	FeedFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betsim_feed_failures_total",
		Help: "Number of failed odds feed fetches.",
	})

	// SettlementSweeps counts completed settlement sweeps.
	SettlementSweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betsim_settlement_sweeps_total",
		Help: "Number of settlement sweeps executed.",
	})
)
