package models

// Outcome is the side of a three-way market a bet is placed on.
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

// Valid reports whether o is one of the three bettable sides.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeHome, OutcomeDraw, OutcomeAway:
		return true
	}
	return false
}

// MatchOutcome is the final result of a completed match.
type MatchOutcome string

const (
	MatchHomeWin MatchOutcome = "home_win"
	MatchAwayWin MatchOutcome = "away_win"
	MatchDraw    MatchOutcome = "draw"
)

// Wins reports whether a bet on side o pays out for match result res.
// This is the single translation point between the bet-side vocabulary
// (home/draw/away) and the result vocabulary (home_win/away_win/draw).
func (o Outcome) Wins(res MatchOutcome) bool {
	switch o {
	case OutcomeHome:
		return res == MatchHomeWin
	case OutcomeAway:
		return res == MatchAwayWin
	case OutcomeDraw:
		return res == MatchDraw
	}
	return false
}
