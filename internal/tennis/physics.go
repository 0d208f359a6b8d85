package tennis

import "github.com/vovakirdan/quiz-tennis/internal/core"

// BallEvent is the outcome of one physics tick.
type BallEvent int

const (
	BallInFlight               BallEvent = iota // Still in play, nothing happened
	BallOutOfBounds                             // Lateral left [0, 100]
	BallCrossedNetTowardPlayer                  // Depth passed the net moving toward the player
	BallReachedPlayerEnd                        // Passed the player unstruck
	BallReachedOpponentEnd                      // Passed the opponent unstruck
)

// String returns the event name.
func (e BallEvent) String() string {
	switch e {
	case BallInFlight:
		return "in_flight"
	case BallOutOfBounds:
		return "out_of_bounds"
	case BallCrossedNetTowardPlayer:
		return "crossed_net"
	case BallReachedPlayerEnd:
		return "reached_player_end"
	case BallReachedOpponentEnd:
		return "reached_opponent_end"
	default:
		return "unknown"
	}
}

// Terminal reports whether the event ends the rally.
func (e BallEvent) Terminal() bool {
	switch e {
	case BallOutOfBounds, BallReachedPlayerEnd, BallReachedOpponentEnd:
		return true
	default:
		return false
	}
}

// Ball is the ball state in logical court space.
type Ball struct {
	Lateral    float64 // 0..100, left to right
	Depth      float64 // 0 at the player's baseline, 1 at the opponent's
	DLateral   float64
	DDepth     float64
	SpeedScale float64 // Grows with every strike, reset to 1 on serve
	LastHitBy  Side
}

// PhysicsConfig holds ball physics tuning.
type PhysicsConfig struct {
	BaseSpeed       float64 // Depth units per second at SpeedScale 1
	SlowMotion      float64 // Speed factor while a question is active
	SpeedIncrement  float64 // SpeedScale growth per strike
	MaxSpeedScale   float64
	StrikeWindow    float64 // Depth band in front of each baseline
	BounceJitter    float64 // Max random lateral velocity added on a strike
	LateralCarry    float64 // Share of lateral velocity kept through a strike
	MaxLateralSpeed float64
}

// Physics integrates the ball and detects rally events.
// A ball that produced a terminal event stays dead until Reset.
type Physics struct {
	cfg     PhysicsConfig
	rng     Source
	ball    Ball
	crossed bool // Net crossing already reported for the current leg
	dead    bool
	last    BallEvent
}

// NewPhysics creates a physics engine with the ball resting at the player's
// baseline.
func NewPhysics(cfg PhysicsConfig, rng Source) *Physics {
	p := &Physics{cfg: cfg, rng: rng}
	p.Reset(SidePlayer)
	return p
}

// Reset places the ball on the server's baseline, centred, heading toward the
// receiver at base speed.
func (p *Physics) Reset(serving Side) {
	b := Ball{
		Lateral:    CourtCenter,
		SpeedScale: 1,
		LastHitBy:  serving,
	}
	if serving == SidePlayer {
		b.Depth, b.DDepth = 0, 1
	} else {
		b.Depth, b.DDepth = 1, -1
	}
	p.ball = b
	p.crossed = false
	p.dead = false
	p.last = BallInFlight
}

// Ball returns a copy of the ball state.
func (p *Physics) Ball() Ball {
	return p.ball
}

// Dead reports whether the ball produced a terminal event.
func (p *Physics) Dead() bool {
	return p.dead
}

// EffectiveSpeed returns the current integration speed.
func (p *Physics) EffectiveSpeed(questionActive bool) float64 {
	speed := p.cfg.BaseSpeed * p.ball.SpeedScale
	if questionActive {
		speed *= p.cfg.SlowMotion
	}
	return speed
}

// Tick advances the ball by dt seconds. A dead ball is not integrated and
// keeps reporting its terminal event.
func (p *Physics) Tick(dt float64, questionActive bool) BallEvent {
	if p.dead {
		return p.last
	}
	if !(dt > 0) {
		return BallInFlight
	}

	speed := p.EffectiveSpeed(questionActive)
	prevDepth := p.ball.Depth
	p.ball.Lateral += p.ball.DLateral * dt * speed
	p.ball.Depth += p.ball.DDepth * dt * speed

	switch {
	case p.ball.Lateral < CourtMin || p.ball.Lateral > CourtMax:
		return p.kill(BallOutOfBounds)
	case p.ball.DDepth < 0 && p.ball.Depth <= 0:
		p.ball.Depth = 0
		return p.kill(BallReachedPlayerEnd)
	case p.ball.DDepth > 0 && p.ball.Depth >= 1:
		p.ball.Depth = 1
		return p.kill(BallReachedOpponentEnd)
	case p.ball.DDepth < 0 && !p.crossed && prevDepth > NetDepth && p.ball.Depth <= NetDepth:
		p.crossed = true
		return BallCrossedNetTowardPlayer
	}
	return BallInFlight
}

func (p *Physics) kill(e BallEvent) BallEvent {
	p.dead = true
	p.last = e
	return e
}

// InStrikeWindow reports whether actor may legally contact the ball: it must
// be inside the actor's depth band and moving toward the actor.
func (p *Physics) InStrikeWindow(actor Side) bool {
	if p.dead {
		return false
	}
	if actor == SidePlayer {
		return p.ball.DDepth < 0 && p.ball.Depth <= p.cfg.StrikeWindow
	}
	return p.ball.DDepth > 0 && p.ball.Depth >= 1-p.cfg.StrikeWindow
}

// BounceOffRacket returns the ball toward the other end. lateralOffset is how
// far off-centre the racket met the ball. Strikes outside the actor's window
// are ignored and report false.
func (p *Physics) BounceOffRacket(actor Side, lateralOffset float64) bool {
	if !p.InStrikeWindow(actor) {
		return false
	}
	jitter := 0.0
	if p.rng != nil && p.cfg.BounceJitter > 0 {
		jitter = (p.rng.Float64()*2 - 1) * p.cfg.BounceJitter
	}
	limit := p.cfg.MaxLateralSpeed
	p.ball.DLateral = core.ClampF(p.ball.DLateral*p.cfg.LateralCarry+jitter+lateralOffset, -limit, limit)
	p.ball.DDepth = -p.ball.DDepth
	p.ball.SpeedScale = min(p.ball.SpeedScale+p.cfg.SpeedIncrement, p.cfg.MaxSpeedScale)
	p.ball.LastHitBy = actor
	p.crossed = false
	return true
}
