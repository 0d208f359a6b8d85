package tennis

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// Point is a rung on the in-game point ladder.
type Point int

const (
	PointLove Point = iota
	Point15
	Point30
	Point40
	PointAdvantage
)

// String returns the scoreboard label.
func (p Point) String() string {
	switch p {
	case PointLove:
		return "0"
	case Point15:
		return "15"
	case Point30:
		return "30"
	case Point40:
		return "40"
	case PointAdvantage:
		return "AD"
	default:
		return "?"
	}
}

// Rules configures set and match length.
type Rules struct {
	GamesPerSet int // Games needed to win a set, with a lead of two
	TiebreakAt  int // Games each at which a tiebreak decides the set
	TiebreakTo  int // Tiebreak points needed, with a lead of two
	SetsToWin   int
}

// DefaultRules returns best-of-three sets to six games with a 7-point tiebreak.
func DefaultRules() Rules {
	return Rules{
		GamesPerSet: 6,
		TiebreakAt:  6,
		TiebreakTo:  7,
		SetsToWin:   2,
	}
}

// Validate checks the rules are playable.
func (r Rules) Validate() error {
	var errs []error
	if r.GamesPerSet < 1 {
		errs = append(errs, fmt.Errorf("games per set must be positive, got %d", r.GamesPerSet))
	}
	if r.TiebreakAt < r.GamesPerSet {
		errs = append(errs, fmt.Errorf("tiebreak at %d is below games per set %d", r.TiebreakAt, r.GamesPerSet))
	}
	if r.TiebreakTo < 1 {
		errs = append(errs, fmt.Errorf("tiebreak target must be positive, got %d", r.TiebreakTo))
	}
	if r.SetsToWin < 1 {
		errs = append(errs, fmt.Errorf("sets to win must be positive, got %d", r.SetsToWin))
	}
	return errors.Join(errs...)
}

// SetScore is a completed set's game count.
type SetScore struct {
	Player   int
	Opponent int
}

// String formats the set as "6-4".
func (s SetScore) String() string {
	return fmt.Sprintf("%d-%d", s.Player, s.Opponent)
}

// Winner returns the side that took the set.
func (s SetScore) Winner() Side {
	if s.Player > s.Opponent {
		return SidePlayer
	}
	return SideOpponent
}

// Score is the full match score. It is a value: AwardPoint returns a new one.
type Score struct {
	Points         [2]Point // Indexed by Side
	Deuce          bool
	Games          [2]int
	Sets           [2]int
	History        []SetScore // Completed sets, append-only
	Serving        Side
	Tiebreak       bool
	TiebreakPoints [2]int
	Over           bool
	Winner         Side
}

// NewScore returns 0-0 with server serving first.
func NewScore(server Side) Score {
	return Score{Serving: server}
}

// Clone returns a copy that shares no memory with s.
func (s Score) Clone() Score {
	s.History = slices.Clone(s.History)
	return s
}

// PointLabel returns the current game score for side as shown on a
// scoreboard: the ladder label, or the raw count during a tiebreak.
func (s Score) PointLabel(side Side) string {
	if s.Tiebreak {
		return strconv.Itoa(s.TiebreakPoints[side])
	}
	return s.Points[side].String()
}

// String formats the score for logs, player first.
func (s Score) String() string {
	game := s.PointLabel(SidePlayer) + "-" + s.PointLabel(SideOpponent)
	if s.Deuce {
		game = "deuce"
	}
	if s.Tiebreak {
		game = "tiebreak " + game
	}
	return fmt.Sprintf("sets %d-%d games %d-%d %s", s.Sets[SidePlayer], s.Sets[SideOpponent],
		s.Games[SidePlayer], s.Games[SideOpponent], game)
}

// ScoreOutcome reports what a point decided.
type ScoreOutcome struct {
	Winner          Side
	GameWon         bool
	SetWon          bool
	MatchWon        bool
	EnteredTiebreak bool
	Ignored         bool // Match was already over
}

// AwardPoint gives one point to winner and returns the new score. The input
// is not modified. Points after the match is over are ignored.
func AwardPoint(s Score, r Rules, winner Side) (Score, ScoreOutcome) {
	out := ScoreOutcome{Winner: winner}
	if s.Over {
		out.Ignored = true
		return s, out
	}
	s = s.Clone()
	loser := winner.Other()

	if s.Tiebreak {
		s.TiebreakPoints[winner]++
		if s.TiebreakPoints[winner] >= r.TiebreakTo && s.TiebreakPoints[winner]-s.TiebreakPoints[loser] >= 2 {
			winGame(&s, r, winner, &out)
		}
		return s, out
	}

	switch {
	case s.Points[winner] == PointAdvantage:
		winGame(&s, r, winner, &out)
	case s.Points[loser] == PointAdvantage:
		s.Points[loser] = Point40
		s.Deuce = true
	case s.Deuce:
		s.Points[winner] = PointAdvantage
		s.Deuce = false
	case s.Points[winner] == Point40:
		winGame(&s, r, winner, &out)
	default:
		s.Points[winner]++
		s.Deuce = s.Points[winner] == Point40 && s.Points[loser] == Point40
	}
	return s, out
}

func winGame(s *Score, r Rules, winner Side, out *ScoreOutcome) {
	loser := winner.Other()
	out.GameWon = true
	s.Games[winner]++
	s.Points = [2]Point{}
	s.Deuce = false
	s.Serving = s.Serving.Other()

	switch {
	case s.Tiebreak:
		winSet(s, r, winner, out)
	case s.Games[winner] >= r.GamesPerSet && s.Games[winner]-s.Games[loser] >= 2:
		winSet(s, r, winner, out)
	case s.Games[winner] == r.TiebreakAt && s.Games[loser] == r.TiebreakAt:
		s.Tiebreak = true
		s.TiebreakPoints = [2]int{}
		out.EnteredTiebreak = true
	}
}

func winSet(s *Score, r Rules, winner Side, out *ScoreOutcome) {
	out.SetWon = true
	s.History = append(s.History, SetScore{Player: s.Games[SidePlayer], Opponent: s.Games[SideOpponent]})
	s.Sets[winner]++
	s.Games = [2]int{}
	s.Tiebreak = false
	s.TiebreakPoints = [2]int{}
	if s.Sets[winner] >= r.SetsToWin {
		s.Over = true
		s.Winner = winner
		out.MatchWon = true
	}
}
