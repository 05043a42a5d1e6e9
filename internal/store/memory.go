package store

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

// Memory is an in-process store mirroring the Postgres semantics,
// including the conditional debit and the at-most-once status gate. It
// backs the service tests and local runs without a database.
type Memory struct {
	mu    sync.Mutex
	users map[string]decimal.Decimal
	bets  map[string]*models.Bet
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]decimal.Decimal),
		bets:  make(map[string]*models.Bet),
	}
}

// GetOrCreateUser returns the user's balance, seeding new users with the
// initial balance.
func (m *Memory) GetOrCreateUser(ctx context.Context, userID string, initialBalance decimal.Decimal) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if balance, ok := m.users[userID]; ok {
		return balance, nil
	}
	m.users[userID] = initialBalance
	return initialBalance, nil
}

// GetBalance returns the user's current balance.
func (m *Memory) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance, ok := m.users[userID]
	if !ok {
		return decimal.Zero, ErrNotFound
	}
	return balance, nil
}

// PlaceBet debits the stake and records the active bet as one atomic
// step under the store lock.
func (m *Memory) PlaceBet(ctx context.Context, bet *models.Bet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.bets {
		if existing.UserID == bet.UserID && existing.MatchID == bet.MatchID &&
			existing.Status == models.BetActive {
			return ErrDuplicatePosition
		}
	}

	balance, ok := m.users[bet.UserID]
	if !ok || balance.LessThan(bet.Amount) {
		return ErrInsufficientBalance
	}

	m.users[bet.UserID] = balance.Sub(bet.Amount)
	copied := *bet
	m.bets[bet.ID.String()] = &copied
	return nil
}

// SettleBet transitions the bet out of active and credits winners. The
// status check under the lock is the at-most-once gate.
func (m *Memory) SettleBet(ctx context.Context, bet *models.Bet, status models.BetStatus, payout decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.bets[bet.ID.String()]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != models.BetActive {
		return models.ErrSettlementConflict
	}

	stored.Status = status
	now := time.Now().UTC()
	stored.SettledAt = &now
	if payout.IsPositive() {
		m.users[stored.UserID] = m.users[stored.UserID].Add(payout)
	}
	return nil
}

// ListActiveBetsByMatch returns copies of every active bet on a match.
func (m *Memory) ListActiveBetsByMatch(ctx context.Context, matchID string) ([]*models.Bet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var bets []*models.Bet
	for _, bet := range m.bets {
		if bet.MatchID == matchID && bet.Status == models.BetActive {
			copied := *bet
			bets = append(bets, &copied)
		}
	}
	return bets, nil
}

// ListBetsByUser returns copies of the user's bets.
func (m *Memory) ListBetsByUser(ctx context.Context, userID string) ([]*models.Bet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var bets []*models.Bet
	for _, bet := range m.bets {
		if bet.UserID == userID {
			copied := *bet
			bets = append(bets, &copied)
		}
	}
	return bets, nil
}

// Ping always succeeds for the in-memory store.
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// Bet returns a copy of one stored bet, for tests.
func (m *Memory) Bet(id string) (*models.Bet, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bet, ok := m.bets[id]
	if !ok {
		return nil, false
	}
	copied := *bet
	return &copied, true
}
