package tennis

import (
	"math"
	"slices"
)

// Snapshot is a read-only copy of the match after a tick, enough to draw a
// frame without touching the engine.
type Snapshot struct {
	Phase     Phase
	Ball      Ball
	Player    Racket
	Opponent  Racket
	Gate      GateSnapshot
	Score     Score
	Stats     Stats
	LastPoint Event   // Most recent EventPoint; Reason is ReasonNone before the first point
	Pause     float64 // Seconds left in POINT_SCORED
	Elapsed   float64 // Seconds played since the first serve
	Events    []Event // Emitted during this tick
}

// Snapshot returns the current state. Events are those of the last tick.
func (m *Match) Snapshot() Snapshot {
	player := m.player
	player.Locked = m.gate.Locked()
	return Snapshot{
		Phase:     m.phase,
		Ball:      m.physics.Ball(),
		Player:    player,
		Opponent:  m.cpu,
		Gate:      m.gate.Snapshot(),
		Score:     m.score.Clone(),
		Stats:     m.stats,
		LastPoint: m.lastPoint,
		Pause:     max(0, m.pause),
		Elapsed:   m.elapsed,
		Events:    slices.Clone(m.events),
	}
}

// Has reports whether an event of kind k was emitted this tick.
func (s Snapshot) Has(k EventKind) bool {
	return slices.ContainsFunc(s.Events, func(e Event) bool { return e.Kind == k })
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Phase) //#nosec G115 -- hash computation
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(v float64) { mix(math.Float64bits(v)) }
	mixI := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation
	mixB := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixF(s.Ball.Lateral)
	mixF(s.Ball.Depth)
	mixF(s.Ball.DLateral)
	mixF(s.Ball.DDepth)
	mixF(s.Ball.SpeedScale)
	mixI(int(s.Ball.LastHitBy))
	mixF(s.Player.Position)
	mixB(s.Player.Locked)
	mixF(s.Opponent.Position)

	mixI(int(s.Gate.State))
	mixF(s.Gate.Remaining)
	mixI(int(s.Gate.Result))

	for side := range 2 {
		mixI(int(s.Score.Points[side]))
		mixI(s.Score.Games[side])
		mixI(s.Score.Sets[side])
		mixI(s.Score.TiebreakPoints[side])
		mixI(s.Stats.PointsWon[side])
	}
	mixB(s.Score.Deuce)
	mixB(s.Score.Tiebreak)
	mixI(int(s.Score.Serving))
	for _, set := range s.Score.History {
		mixI(set.Player)
		mixI(set.Opponent)
	}
	mixI(s.Stats.QuestionsAsked)
	mixI(s.Stats.Correct)
	mixI(s.Stats.Strikes)
	mixF(s.Elapsed)
	return h
}
