package tennis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhysics() *Physics {
	return NewPhysics(DefaultConfig().Physics(), NewRNG(1))
}

func TestPhysicsReset(t *testing.T) {
	p := testPhysics()

	p.Reset(SidePlayer)
	b := p.Ball()
	assert.Equal(t, 0.0, b.Depth)
	assert.Greater(t, b.DDepth, 0.0)
	assert.Equal(t, CourtCenter, b.Lateral)
	assert.Equal(t, 0.0, b.DLateral)
	assert.Equal(t, 1.0, b.SpeedScale)
	assert.False(t, p.Dead())

	p.Reset(SideOpponent)
	b = p.Ball()
	assert.Equal(t, 1.0, b.Depth)
	assert.Less(t, b.DDepth, 0.0)
}

func TestPhysicsDepthMonotonic(t *testing.T) {
	p := testPhysics()
	p.Reset(SidePlayer)

	prev := p.Ball().Depth
	for i := 0; i < 1000; i++ {
		ev := p.Tick(1.0/60, false)
		depth := p.Ball().Depth
		if ev.Terminal() {
			assert.Equal(t, BallReachedOpponentEnd, ev)
			assert.Equal(t, 1.0, depth)
			return
		}
		require.Greater(t, depth, prev, "tick %d", i)
		prev = depth
	}
	t.Fatal("ball never reached the far baseline")
}

func TestPhysicsSlowMotion(t *testing.T) {
	cfg := DefaultConfig().Physics()
	fast := NewPhysics(cfg, nil)
	slow := NewPhysics(cfg, nil)

	fast.Tick(0.05, false)
	slow.Tick(0.05, true)

	assert.InDelta(t, fast.Ball().Depth*cfg.SlowMotion, slow.Ball().Depth, 1e-12)
}

func TestPhysicsNetCrossingFiresOncePerLeg(t *testing.T) {
	p := testPhysics()
	p.ball = Ball{Lateral: 50, Depth: 0.51, DDepth: -1, SpeedScale: 1, LastHitBy: SideOpponent}
	p.crossed = false

	dt := 0.02 / p.cfg.BaseSpeed
	crossings := 0
	first := p.Tick(dt, false)
	require.Equal(t, BallCrossedNetTowardPlayer, first)
	assert.InDelta(t, 0.49, p.Ball().Depth, 1e-9)
	crossings++

	for {
		ev := p.Tick(dt, false)
		if ev == BallCrossedNetTowardPlayer {
			crossings++
		}
		if ev.Terminal() {
			assert.Equal(t, BallReachedPlayerEnd, ev)
			break
		}
	}
	assert.Equal(t, 1, crossings)
}

func TestPhysicsCrossingTowardOpponentIsSilent(t *testing.T) {
	p := testPhysics()
	p.Reset(SidePlayer)
	for {
		ev := p.Tick(1.0/30, false)
		require.NotEqual(t, BallCrossedNetTowardPlayer, ev)
		if ev.Terminal() {
			break
		}
	}
}

func TestPhysicsBounceFlipsDepthVelocity(t *testing.T) {
	p := testPhysics()
	p.ball = Ball{Lateral: 50, Depth: 0.95, DDepth: 1, SpeedScale: 1}

	require.True(t, p.BounceOffRacket(SideOpponent, 0))
	b := p.Ball()
	assert.Less(t, b.DDepth, 0.0)
	assert.Equal(t, SideOpponent, b.LastHitBy)
	assert.InDelta(t, 1+p.cfg.SpeedIncrement, b.SpeedScale, 1e-12)
	assert.LessOrEqual(t, b.DLateral, p.cfg.BounceJitter)
	assert.GreaterOrEqual(t, b.DLateral, -p.cfg.BounceJitter)

	// Moving away from the opponent now: a second strike is out of window.
	assert.False(t, p.BounceOffRacket(SideOpponent, 0))

	p.ball.Depth = 0.05
	require.True(t, p.BounceOffRacket(SidePlayer, 3))
	assert.Greater(t, p.Ball().DDepth, 0.0)
	assert.Equal(t, SidePlayer, p.Ball().LastHitBy)
}

func TestPhysicsBounceOutsideWindowIsNoop(t *testing.T) {
	p := testPhysics()
	p.ball = Ball{Lateral: 40, Depth: 0.5, DDepth: -1, DLateral: 5, SpeedScale: 1.3}
	before := p.Ball()

	assert.False(t, p.BounceOffRacket(SidePlayer, 10))
	assert.False(t, p.BounceOffRacket(SideOpponent, 10))
	assert.Equal(t, before, p.Ball())
}

func TestPhysicsSpeedScaleCapped(t *testing.T) {
	p := testPhysics()
	p.ball = Ball{Lateral: 50, Depth: 0.05, DDepth: -1, SpeedScale: 1}

	actor := SidePlayer
	for range 100 {
		if actor == SidePlayer {
			p.ball.Depth = 0.05
		} else {
			p.ball.Depth = 0.95
		}
		require.True(t, p.BounceOffRacket(actor, 0))
		actor = actor.Other()
	}
	assert.Equal(t, p.cfg.MaxSpeedScale, p.Ball().SpeedScale)
}

func TestPhysicsLateralSpeedBounded(t *testing.T) {
	p := testPhysics()
	p.ball = Ball{Lateral: 50, Depth: 0.05, DDepth: -1, SpeedScale: 1}
	require.True(t, p.BounceOffRacket(SidePlayer, 1000))
	assert.Equal(t, p.cfg.MaxLateralSpeed, p.Ball().DLateral)
}

func TestPhysicsTerminalEvents(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
		want BallEvent
	}{
		{"out right", Ball{Lateral: 99.9, Depth: 0.5, DLateral: 40, DDepth: 1, SpeedScale: 1}, BallOutOfBounds},
		{"out left", Ball{Lateral: 0.1, Depth: 0.5, DLateral: -40, DDepth: -1, SpeedScale: 1}, BallOutOfBounds},
		{"player end", Ball{Lateral: 50, Depth: 0.01, DDepth: -1, SpeedScale: 1}, BallReachedPlayerEnd},
		{"opponent end", Ball{Lateral: 50, Depth: 0.99, DDepth: 1, SpeedScale: 1}, BallReachedOpponentEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPhysics()
			p.ball = tt.ball

			require.Equal(t, tt.want, p.Tick(0.1, false))
			require.True(t, p.Dead())

			// A dead ball is not integrated further.
			frozen := p.Ball()
			assert.Equal(t, tt.want, p.Tick(0.1, false))
			assert.Equal(t, frozen, p.Ball())
			assert.False(t, p.InStrikeWindow(SidePlayer))
		})
	}
}

func TestPhysicsNonPositiveDt(t *testing.T) {
	p := testPhysics()
	before := p.Ball()
	assert.Equal(t, BallInFlight, p.Tick(0, false))
	assert.Equal(t, BallInFlight, p.Tick(-1, false))
	assert.Equal(t, before, p.Ball())
}
