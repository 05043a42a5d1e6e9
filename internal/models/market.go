package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketStatus describes where a market is in its lifecycle.
type MarketStatus string

const (
	MarketPending   MarketStatus = "pending"
	MarketLive      MarketStatus = "live"
	MarketCompleted MarketStatus = "completed"
)

// OddsSet holds the three-way decimal odds for a market.
type OddsSet struct {
	Home decimal.Decimal `json:"home"`
	Draw decimal.Decimal `json:"draw"`
	Away decimal.Decimal `json:"away"`
}

// ForOutcome returns the odds for one side of the market.
func (s OddsSet) ForOutcome(o Outcome) decimal.Decimal {
	switch o {
	case OutcomeHome:
		return s.Home
	case OutcomeAway:
		return s.Away
	default:
		return s.Draw
	}
}

// DefaultOdds is the fallback used when upstream bookmaker data is
// malformed or incomplete.
func DefaultOdds() OddsSet {
	return OddsSet{
		Home: decimal.NewFromInt(2),
		Draw: decimal.NewFromInt(3),
		Away: decimal.NewFromInt(2),
	}
}

// Market is one bettable match built from the odds feed.
type Market struct {
	ID       string `json:"id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	// Team keys are the metadata-feed identifiers for the two clubs,
	// resolved from the odds-feed names. Cosmetic only.
	HomeTeamKey string    `json:"home_team_key,omitempty"`
	AwayTeamKey string    `json:"away_team_key,omitempty"`
	StartTime   time.Time `json:"start_time"`
	Odds        OddsSet   `json:"odds"`
	Bookmaker   string    `json:"bookmaker"`
	Completed   bool      `json:"completed"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Status derives the market lifecycle state from the clock and the
// completion flag. It is a pure function: repeated calls with unchanged
// inputs yield the same result, so refresh cycles can re-derive it freely.
func (m *Market) Status(now time.Time) MarketStatus {
	if m.Completed {
		return MarketCompleted
	}
	if !now.Before(m.StartTime) {
		return MarketLive
	}
	return MarketPending
}

// Locked reports whether the market accepts new wagers at time now.
// A market locks the instant it starts; the one-position-per-user rule
// is enforced by the betting service on top of this.
func (m *Market) Locked(now time.Time) bool {
	return !now.Before(m.StartTime)
}

// Result returns the final result of the match, or false if the match
// has not completed yet.
func (m *Market) Result() (MatchOutcome, bool) {
	if !m.Completed {
		return "", false
	}
	return ScoreOutcome(m.HomeScore, m.AwayScore), true
}

// ScoreOutcome maps a final score to a match result.
func ScoreOutcome(homeGoals, awayGoals int) MatchOutcome {
	switch {
	case homeGoals > awayGoals:
		return MatchHomeWin
	case awayGoals > homeGoals:
		return MatchAwayWin
	default:
		return MatchDraw
	}
}

// MatchResult is the settlement-relevant slice of the scores feed.
type MatchResult struct {
	MatchID   string `json:"match_id"`
	Completed bool   `json:"completed"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

// Outcome returns the match result, or false if the match is not
// completed yet.
func (r MatchResult) Outcome() (MatchOutcome, bool) {
	if !r.Completed {
		return "", false
	}
	return ScoreOutcome(r.HomeScore, r.AwayScore), true
}
