package tennis

import "github.com/vovakirdan/quiz-tennis/internal/core"

// Opponent steers the CPU racket. Tracking error is resampled on every call
// to ComputeTarget so the racket wobbles instead of sitting at a fixed miss.
type Opponent struct {
	MaxError float64 // Error bound at skill 0
	rng      Source
}

// NewOpponent creates an opponent controller.
func NewOpponent(maxError float64, rng Source) *Opponent {
	return &Opponent{MaxError: maxError, rng: rng}
}

// ComputeTarget returns where the racket wants to be: the ball's lateral
// position off by at most MaxError*(1-skill).
func (o *Opponent) ComputeTarget(ballLateral, skill float64) float64 {
	skill = core.ClampF(skill, 0, 1)
	if o.rng == nil {
		return ballLateral
	}
	return ballLateral + (o.rng.Float64()*2-1)*o.MaxError*(1-skill)
}

// Advance moves current toward target by at most maxSpeed*dt and keeps the
// result on the court.
func (o *Opponent) Advance(current, target, dt, maxSpeed float64) float64 {
	if !(dt > 0) || !(maxSpeed > 0) {
		return core.ClampF(current, CourtMin, CourtMax)
	}
	step := maxSpeed * dt
	delta := core.ClampF(target-current, -step, step)
	return core.ClampF(current+delta, CourtMin, CourtMax)
}
