// Package store persists users and bets. The balance and status
// invariants are enforced here, in the database, with conditional
// updates: a client computing its own balance cannot corrupt the ledger.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/models"
)

var (
	// ErrInsufficientBalance means the conditional debit found less
	// balance than the stake.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicatePosition means the user already holds an active bet
	// on the match.
	ErrDuplicatePosition = errors.New("active bet already exists for match")

	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	balance    NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bets (
	id            UUID PRIMARY KEY,
	user_id       TEXT NOT NULL REFERENCES users(id),
	match_id      TEXT NOT NULL,
	outcome       TEXT NOT NULL,
	odds          NUMERIC(8,3) NOT NULL,
	amount        NUMERIC(15,2) NOT NULL CHECK (amount > 0),
	potential_win NUMERIC(15,2) NOT NULL,
	status        TEXT NOT NULL DEFAULT 'active',
	home_team     TEXT NOT NULL DEFAULT '',
	away_team     TEXT NOT NULL DEFAULT '',
	placed_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	settled_at    TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_bets_one_active_position
	ON bets (user_id, match_id) WHERE status = 'active';
CREATE INDEX IF NOT EXISTS idx_bets_match_status ON bets (match_id, status);
CREATE INDEX IF NOT EXISTS idx_bets_user ON bets (user_id);
`

// Connect opens a Postgres pool and verifies it responds.
func Connect(dsn string, maxOpenConns int, connMaxLifetime time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Postgres persists users and bets in Postgres.
type Postgres struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewPostgres creates a Postgres-backed store.
func NewPostgres(db *sql.DB, logger zerolog.Logger) *Postgres {
	return &Postgres{
		db:     db,
		logger: logger.With().Str("component", "postgres_store").Logger(),
	}
}

// EnsureSchema creates the tables and indexes if they do not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// GetOrCreateUser returns the user's balance, seeding a new user with the
// initial balance when the row does not exist yet.
func (p *Postgres) GetOrCreateUser(ctx context.Context, userID string, initialBalance decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO users (id, balance) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET id = users.id
		RETURNING balance`,
		userID, initialBalance,
	).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get or create user: %w", err)
	}
	return balance, nil
}

// GetBalance returns the user's current balance.
func (p *Postgres) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := p.db.QueryRowContext(ctx,
		`SELECT balance FROM users WHERE id = $1`, userID,
	).Scan(&balance)
	if err == sql.ErrNoRows {
		return decimal.Zero, ErrNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// PlaceBet atomically debits the stake and inserts the active bet. If any
// step fails the transaction rolls back, leaving the balance untouched.
func (p *Postgres) PlaceBet(ctx context.Context, bet *models.Bet) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin place bet: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM bets
			WHERE user_id = $1 AND match_id = $2 AND status = 'active')`,
		bet.UserID, bet.MatchID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check active position: %w", err)
	}
	if exists {
		return ErrDuplicatePosition
	}

	// Conditional debit: the WHERE clause is what makes a stale
	// client-side balance read harmless.
	res, err := tx.ExecContext(ctx, `
		UPDATE users SET balance = balance - $1
		WHERE id = $2 AND balance >= $1`,
		bet.Amount, bet.UserID,
	)
	if err != nil {
		return fmt.Errorf("debit stake: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit stake: %w", err)
	}
	if affected == 0 {
		return ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bets (id, user_id, match_id, outcome, odds, amount,
			potential_win, status, home_team, away_team, placed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		bet.ID, bet.UserID, bet.MatchID, string(bet.Outcome), bet.Odds,
		bet.Amount, bet.PotentialWin, string(bet.Status),
		bet.HomeTeam, bet.AwayTeam, bet.PlacedAt,
	)
	if err != nil {
		// Two racing placements can both pass the EXISTS check; the
		// loser trips the partial unique index instead.
		if isUniqueViolation(err) {
			return ErrDuplicatePosition
		}
		return fmt.Errorf("insert bet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit place bet: %w", err)
	}
	return nil
}

// SettleBet transitions one bet out of active and, for winners, credits
// the payout in the same transaction. The conditional status update is
// the at-most-once gate: losing the race returns ErrSettlementConflict,
// which callers treat as a successful no-op.
func (p *Postgres) SettleBet(ctx context.Context, bet *models.Bet, status models.BetStatus, payout decimal.Decimal) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settle bet: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE bets SET status = $2, settled_at = now()
		WHERE id = $1 AND status = 'active'`,
		bet.ID, string(status),
	)
	if err != nil {
		return fmt.Errorf("transition bet status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition bet status: %w", err)
	}
	if affected == 0 {
		return models.ErrSettlementConflict
	}

	if payout.IsPositive() {
		if _, err := tx.ExecContext(ctx, `
			UPDATE users SET balance = balance + $1 WHERE id = $2`,
			payout, bet.UserID,
		); err != nil {
			return fmt.Errorf("credit payout: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settle bet: %w", err)
	}
	return nil
}

// ListActiveBetsByMatch returns every active bet on a match.
func (p *Postgres) ListActiveBetsByMatch(ctx context.Context, matchID string) ([]*models.Bet, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, user_id, match_id, outcome, odds, amount, potential_win,
			status, home_team, away_team, placed_at, settled_at
		FROM bets WHERE match_id = $1 AND status = 'active'
		ORDER BY placed_at`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("list active bets: %w", err)
	}
	defer rows.Close()
	return scanBets(rows)
}

// ListBetsByUser returns the user's full bet history, newest first.
func (p *Postgres) ListBetsByUser(ctx context.Context, userID string) ([]*models.Bet, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, user_id, match_id, outcome, odds, amount, potential_win,
			status, home_team, away_team, placed_at, settled_at
		FROM bets WHERE user_id = $1
		ORDER BY placed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user bets: %w", err)
	}
	defer rows.Close()
	return scanBets(rows)
}

// Ping checks the database connection.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func scanBets(rows *sql.Rows) ([]*models.Bet, error) {
	var bets []*models.Bet
	for rows.Next() {
		var (
			bet       models.Bet
			id        string
			outcome   string
			status    string
			settledAt sql.NullTime
		)
		if err := rows.Scan(&id, &bet.UserID, &bet.MatchID, &outcome,
			&bet.Odds, &bet.Amount, &bet.PotentialWin, &status,
			&bet.HomeTeam, &bet.AwayTeam, &bet.PlacedAt, &settledAt); err != nil {
			return nil, fmt.Errorf("scan bet: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse bet id: %w", err)
		}
		bet.ID = parsed
		bet.Outcome = models.Outcome(outcome)
		bet.Status = models.BetStatus(status)
		if settledAt.Valid {
			t := settledAt.Time
			bet.SettledAt = &t
		}
		bets = append(bets, &bet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bets: %w", err)
	}
	return bets, nil
}
