package tennis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quiz-tennis/internal/questions"
)

// seqSource replays a fixed list of samples.
type seqSource struct {
	vals  []float64
	calls int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v
}

func (s *seqSource) Intn(n int) int {
	return 0
}

// stubSource serves the given questions in order, cycling. An empty stub is
// an exhausted supply.
type stubSource struct {
	qs    []questions.Question
	calls int
}

func (s *stubSource) Next() (questions.Question, bool) {
	s.calls++
	if len(s.qs) == 0 {
		return questions.Question{}, false
	}
	return s.qs[(s.calls-1)%len(s.qs)], true
}

func sampleQuestion() questions.Question {
	return questions.Question{
		Category: "General",
		Prompt:   "How many bits are in a byte?",
		Choices:  [4]string{"4", "8", "16", "32"},
		Answer:   1,
	}
}

func newTestMatch(t *testing.T, cfg Config, rng Source, src QuestionSource) *Match {
	t.Helper()
	m, err := NewMatch(cfg, rng, src)
	require.NoError(t, err)
	return m
}

// placeBall puts a live ball in flight for the current leg.
func placeBall(m *Match, b Ball) {
	if b.SpeedScale == 0 {
		b.SpeedScale = 1
	}
	m.physics.ball = b
	m.physics.dead = false
	m.physics.crossed = false
	m.physics.last = BallInFlight
}

func award(s Score, r Rules, sides ...Side) Score {
	for _, side := range sides {
		s, _ = AwardPoint(s, r, side)
	}
	return s
}

// winGames gives side n straight games.
func winGames(s Score, r Rules, side Side, n int) Score {
	for range n {
		s = award(s, r, side, side, side, side)
	}
	return s
}
