package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FeedEvent is one upcoming or live match as delivered by the odds feed.
// Only the fields the core needs are decoded; everything else is dropped
// at the gateway boundary.
type FeedEvent struct {
	ID           string          `json:"id"`
	SportKey     string          `json:"sport_key"`
	CommenceTime time.Time       `json:"commence_time"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Bookmakers   []FeedBookmaker `json:"bookmakers"`
}

// FeedBookmaker is one bookmaker's markets for an event.
type FeedBookmaker struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Markets []FeedMarket `json:"markets"`
}

// FeedMarket is one market (e.g. "h2h") offered by a bookmaker.
type FeedMarket struct {
	Key      string        `json:"key"`
	Outcomes []FeedOutcome `json:"outcomes"`
}

// FeedOutcome is one priced selection inside a feed market.
type FeedOutcome struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// FeedScore is one entry from the scores feed.
type FeedScore struct {
	ID           string          `json:"id"`
	CommenceTime time.Time       `json:"commence_time"`
	Completed    bool            `json:"completed"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Scores       []FeedTeamScore `json:"scores"`
}

// FeedTeamScore is a single team's score. The feed serializes scores as
// strings.
type FeedTeamScore struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

const h2hMarketKey = "h2h"

// NewMarket builds a Market from a raw feed event. Malformed or missing
// bookmaker data never fails construction; it degrades to DefaultOdds so
// a single bad record cannot take down the whole market list.
func NewMarket(ev FeedEvent, fetchedAt time.Time) Market {
	m := Market{
		ID:        ev.ID,
		HomeTeam:  ev.HomeTeam,
		AwayTeam:  ev.AwayTeam,
		StartTime: ev.CommenceTime,
		Odds:      DefaultOdds(),
		FetchedAt: fetchedAt,
	}

	if len(ev.Bookmakers) == 0 {
		return m
	}

	bookmaker := ev.Bookmakers[0]
	m.Bookmaker = bookmaker.Title

	for _, market := range bookmaker.Markets {
		if market.Key != h2hMarketKey {
			continue
		}
		for _, outcome := range market.Outcomes {
			if outcome.Price.LessThanOrEqual(decimal.NewFromInt(1)) {
				// A decimal price at or below 1.0 cannot be a real
				// quote; keep the default for that side.
				continue
			}
			switch outcome.Name {
			case ev.HomeTeam:
				m.Odds.Home = outcome.Price
			case ev.AwayTeam:
				m.Odds.Away = outcome.Price
			case "Draw":
				m.Odds.Draw = outcome.Price
			}
		}
		break
	}

	return m
}

// ApplyScore folds a scores-feed record into the market. Unknown or
// unparsable scores leave the market untouched.
func (m *Market) ApplyScore(sc FeedScore) {
	if sc.ID != m.ID {
		return
	}
	home, away, ok := sc.FinalScore()
	if !ok {
		return
	}
	m.Completed = sc.Completed
	m.HomeScore = home
	m.AwayScore = away
}

// FinalScore extracts (home, away) goals from the record. Entries are
// matched by team name, falling back to feed order (home first) when the
// names do not line up.
func (sc FeedScore) FinalScore() (home, away int, ok bool) {
	if len(sc.Scores) < 2 {
		return 0, 0, false
	}

	homeRaw, awayRaw := sc.Scores[0].Score, sc.Scores[1].Score
	for _, ts := range sc.Scores {
		switch ts.Name {
		case sc.HomeTeam:
			homeRaw = ts.Score
		case sc.AwayTeam:
			awayRaw = ts.Score
		}
	}

	home, err := strconv.Atoi(homeRaw)
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(awayRaw)
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

// Result converts the scores-feed record into a MatchResult. Records that
// are not completed, or whose scores cannot be parsed, come back with
// Completed=false so callers simply retry later.
func (sc FeedScore) Result() MatchResult {
	res := MatchResult{MatchID: sc.ID}
	if !sc.Completed {
		return res
	}
	home, away, ok := sc.FinalScore()
	if !ok {
		return res
	}
	res.Completed = true
	res.HomeScore = home
	res.AwayScore = away
	return res
}
