// Package tennis implements the quiz tennis simulation: a perspective court,
// ball physics, a CPU opponent, the question gate that locks the player's
// racket, tennis scoring and the match state machine that ties them together.
//
// The package knows nothing about terminals or key presses. A host calls
// Match.Tick once per frame with the elapsed time and the player's input and
// draws the returned Snapshot.
package tennis

// Side identifies one of the two players.
type Side int

const (
	SidePlayer   Side = iota // Human player at the near baseline (depth 0)
	SideOpponent             // CPU opponent at the far baseline (depth 1)
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideOpponent:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Logical court extents.
const (
	CourtMin    = 0.0   // Left sideline
	CourtMax    = 100.0 // Right sideline
	CourtCenter = 50.0
	NetDepth    = 0.5 // Net position between the baselines
)
