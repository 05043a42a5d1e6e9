package models

import "errors"

var (
	// ErrInvalidBet covers the user-correctable placement failures:
	// amount out of range, insufficient balance, locked market, or an
	// existing active position on the same match.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrMarketDataUnavailable signals an upstream feed fetch or parse
	// failure. Retryable; callers fall back to the last known snapshot.
	ErrMarketDataUnavailable = errors.New("market data unavailable")

	// ErrSettlementConflict signals that a concurrent settlement attempt
	// won the conditional status update. It is a successful no-op for
	// the caller, never surfaced as a failure.
	ErrSettlementConflict = errors.New("settlement conflict")
)
