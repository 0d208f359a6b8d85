package tennis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quiz-tennis/internal/questions"
)

func TestGateArmsBelowChance(t *testing.T) {
	src := &stubSource{qs: []questions.Question{sampleQuestion()}}
	g := NewGate(10, 0.4, src)

	require.True(t, g.MaybeArm(&seqSource{vals: []float64{0.1}}))
	snap := g.Snapshot()
	assert.Equal(t, GateArmed, snap.State)
	assert.True(t, snap.Active)
	assert.True(t, snap.Locked)
	assert.Equal(t, 10.0, snap.Remaining)
	assert.Equal(t, sampleQuestion(), snap.Question)
	assert.Equal(t, 1, src.calls)
}

func TestGateStaysIdleAboveChance(t *testing.T) {
	src := &stubSource{qs: []questions.Question{sampleQuestion()}}
	g := NewGate(10, 0.4, src)

	assert.False(t, g.MaybeArm(&seqSource{vals: []float64{0.4}}))
	assert.Equal(t, GateIdle, g.Snapshot().State)
	assert.False(t, g.Locked())
	assert.Equal(t, 0, src.calls, "no question drawn on a failed roll")
}

func TestGateExhaustedSupplyActsLikeFailedRoll(t *testing.T) {
	g := NewGate(10, 1, &stubSource{})
	assert.False(t, g.MaybeArm(&seqSource{vals: []float64{0}}))
	assert.False(t, g.Locked())
	assert.Equal(t, GateIdle, g.Snapshot().State)

	g = NewGate(10, 1, nil)
	assert.False(t, g.MaybeArm(&seqSource{vals: []float64{0}}))
}

func TestGateDeterministicWithSeed(t *testing.T) {
	run := func() []bool {
		rng := NewRNG(42)
		g := NewGate(10, 0.4, &stubSource{qs: []questions.Question{sampleQuestion()}})
		var out []bool
		for range 200 {
			out = append(out, g.MaybeArm(rng))
			g.Clear()
		}
		return out
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, true)
	assert.Contains(t, first, false)
}

func TestGateCountdownHitsZeroBeforeTimeout(t *testing.T) {
	for _, dt := range []float64{0.25, 0.3, 1.0 / 60} {
		g := NewGate(1, 1, &stubSource{qs: []questions.Question{sampleQuestion()}})
		require.True(t, g.MaybeArm(&seqSource{vals: []float64{0}}))

		sawZero := false
		var res AnswerResult
		for i := 0; i < 1000 && res == ResultNone; i++ {
			res = g.Tick(dt)
			remaining := g.Snapshot().Remaining
			require.GreaterOrEqual(t, remaining, 0.0)
			if res == ResultNone && remaining == 0 {
				sawZero = true
			}
		}
		assert.Equal(t, ResultTimeout, res, "dt=%v", dt)
		assert.True(t, sawZero, "dt=%v: remaining never sat at exactly 0", dt)

		snap := g.Snapshot()
		assert.Equal(t, GateResolved, snap.State)
		assert.Equal(t, ResultTimeout, snap.Result)
		assert.True(t, snap.Locked, "timeout keeps the racket locked")
	}
}

func TestGateSubmitAnswer(t *testing.T) {
	tests := []struct {
		name   string
		choice int
		want   AnswerResult
		state  GateState
		locked bool
	}{
		{"correct", 1, ResultCorrect, GateIdle, false},
		{"wrong", 0, ResultWrong, GateResolved, true},
		{"negative index", -1, ResultWrong, GateResolved, true},
		{"index past choices", 4, ResultWrong, GateResolved, true},
		{"far out of range", 99, ResultWrong, GateResolved, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(10, 1, &stubSource{qs: []questions.Question{sampleQuestion()}})
			require.True(t, g.MaybeArm(&seqSource{vals: []float64{0}}))

			assert.Equal(t, tt.want, g.SubmitAnswer(tt.choice))
			snap := g.Snapshot()
			assert.Equal(t, tt.state, snap.State)
			assert.Equal(t, tt.locked, snap.Locked)
			assert.Equal(t, tt.want, snap.Result)

			// Resolved gates ignore further answers and ticks.
			assert.Equal(t, ResultNone, g.SubmitAnswer(1))
			assert.Equal(t, ResultNone, g.Tick(100))
		})
	}
}

func TestGateIgnoresAnswersWhenIdle(t *testing.T) {
	g := NewGate(10, 1, &stubSource{qs: []questions.Question{sampleQuestion()}})
	assert.Equal(t, ResultNone, g.SubmitAnswer(1))
	assert.Equal(t, ResultNone, g.Tick(1))
	assert.False(t, g.Locked())
}

func TestGateDoesNotRearmUntilCleared(t *testing.T) {
	g := NewGate(10, 1, &stubSource{qs: []questions.Question{sampleQuestion()}})
	rng := &seqSource{vals: []float64{0}}
	require.True(t, g.MaybeArm(rng))
	require.Equal(t, ResultWrong, g.SubmitAnswer(3))

	assert.False(t, g.MaybeArm(rng))
	g.Clear()
	assert.False(t, g.Locked())
	assert.True(t, g.MaybeArm(rng))
}
