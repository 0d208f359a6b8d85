package tennis

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by NewMatch for unusable settings.
var ErrInvalidConfig = errors.New("tennis: invalid config")

// Config is fixed for the lifetime of a match.
type Config struct {
	QuestionTimeLimit float64 // Seconds to answer
	QuestionChance    float64 // Probability a net crossing arms a question
	BaseSpeed         float64 // Ball depth units per second at SpeedScale 1
	SlowMotion        float64 // Ball speed factor while a question is up
	OpponentSkill     float64 // 0 (wild) to 1 (perfect tracking)

	SpeedIncrement   float64
	MaxSpeedScale    float64
	StrikeWindow     float64 // Depth band in front of each baseline
	RacketReach      float64 // Lateral distance at which a racket meets the ball
	PlayerSpeed      float64 // Lateral units per second
	OpponentMaxSpeed float64 // Lateral units per second at skill 1
	OpponentMaxError float64 // Tracking error bound at skill 0
	BounceJitter     float64
	LateralCarry     float64
	OffsetGain       float64 // Off-centre contact to lateral velocity
	MaxLateralSpeed  float64
	PointPause       float64 // Seconds the point result stays up
	MaxFrame         float64 // Longest dt integrated in one tick

	FirstServer Side
	Rules       Rules
}

// DefaultConfig returns the standard match settings.
func DefaultConfig() Config {
	return Config{
		QuestionTimeLimit: 10,
		QuestionChance:    0.4,
		BaseSpeed:         0.55,
		SlowMotion:        0.05,
		OpponentSkill:     0.75,

		SpeedIncrement:   0.06,
		MaxSpeedScale:    2.2,
		StrikeWindow:     0.12,
		RacketReach:      9,
		PlayerSpeed:      90,
		OpponentMaxSpeed: 55,
		OpponentMaxError: 36,
		BounceJitter:     8,
		LateralCarry:     0.4,
		OffsetGain:       1.2,
		MaxLateralSpeed:  40,
		PointPause:       1.2,
		MaxFrame:         0.1,

		FirstServer: SidePlayer,
		Rules:       DefaultRules(),
	}
}

// Physics returns the ball physics part of the config.
func (c Config) Physics() PhysicsConfig {
	return PhysicsConfig{
		BaseSpeed:       c.BaseSpeed,
		SlowMotion:      c.SlowMotion,
		SpeedIncrement:  c.SpeedIncrement,
		MaxSpeedScale:   c.MaxSpeedScale,
		StrikeWindow:    c.StrikeWindow,
		BounceJitter:    c.BounceJitter,
		LateralCarry:    c.LateralCarry,
		MaxLateralSpeed: c.MaxLateralSpeed,
	}
}

// Validate reports every unusable setting. The error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	// Comparisons are written so NaN fails them.
	check(c.QuestionTimeLimit > 0, "question time limit must be positive, got %v", c.QuestionTimeLimit)
	check(c.QuestionChance >= 0 && c.QuestionChance <= 1, "question chance must be in [0,1], got %v", c.QuestionChance)
	check(c.BaseSpeed > 0, "base speed must be positive, got %v", c.BaseSpeed)
	check(c.SlowMotion > 0 && c.SlowMotion < 1, "slow motion factor must be in (0,1), got %v", c.SlowMotion)
	check(c.OpponentSkill >= 0 && c.OpponentSkill <= 1, "opponent skill must be in [0,1], got %v", c.OpponentSkill)

	check(c.SpeedIncrement >= 0, "speed increment must not be negative, got %v", c.SpeedIncrement)
	check(c.MaxSpeedScale >= 1, "max speed scale must be at least 1, got %v", c.MaxSpeedScale)
	check(c.StrikeWindow > 0 && c.StrikeWindow < NetDepth, "strike window must be in (0,0.5), got %v", c.StrikeWindow)
	check(c.RacketReach > 0, "racket reach must be positive, got %v", c.RacketReach)
	check(c.PlayerSpeed > 0, "player speed must be positive, got %v", c.PlayerSpeed)
	check(c.OpponentMaxSpeed > 0, "opponent max speed must be positive, got %v", c.OpponentMaxSpeed)
	check(c.OpponentMaxError >= 0, "opponent max error must not be negative, got %v", c.OpponentMaxError)
	check(c.BounceJitter >= 0, "bounce jitter must not be negative, got %v", c.BounceJitter)
	check(c.LateralCarry >= 0 && c.LateralCarry <= 1, "lateral carry must be in [0,1], got %v", c.LateralCarry)
	check(c.OffsetGain >= 0, "offset gain must not be negative, got %v", c.OffsetGain)
	check(c.MaxLateralSpeed > 0, "max lateral speed must be positive, got %v", c.MaxLateralSpeed)
	check(c.PointPause >= 0, "point pause must not be negative, got %v", c.PointPause)
	check(c.MaxFrame > 0, "max frame must be positive, got %v", c.MaxFrame)
	check(c.FirstServer == SidePlayer || c.FirstServer == SideOpponent, "unknown first server %d", int(c.FirstServer))

	if err := c.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
