package tennis

import "github.com/vovakirdan/quiz-tennis/internal/core"

// Projection is a display-space position and sprite scale.
type Projection struct {
	X, Y  float64
	Scale float64
}

// Projector maps logical court coordinates onto a trapezoid seen from behind
// the player: the near baseline is wide and low on the display, the far
// baseline narrow and high.
type Projector struct {
	CenterX       float64 // Display x of the court's center line
	NearHalfWidth float64 // Half court width at depth 0
	FarHalfWidth  float64 // Half court width at depth 1
	NearY         float64 // Display row of the near baseline
	FarY          float64 // Display row of the far baseline
	NearScale     float64
	FarScale      float64
}

// DefaultProjector returns the projector for an 800x600 court view.
func DefaultProjector() Projector {
	return Projector{
		CenterX:       400,
		NearHalfWidth: 340,
		FarHalfWidth:  170,
		NearY:         560,
		FarY:          110,
		NearScale:     1.0,
		FarScale:      0.45,
	}
}

// ProjectorForScreen sizes a projector to a w×h display area in cells.
func ProjectorForScreen(w, h int) Projector {
	return Projector{
		CenterX:       float64(w-1) / 2,
		NearHalfWidth: float64(w-2) / 2,
		FarHalfWidth:  float64(w-2) / 4,
		NearY:         float64(h - 2),
		FarY:          1,
		NearScale:     1.0,
		FarScale:      0.4,
	}
}

// Project maps (lateral, depth) to display space. Any finite input is
// accepted; callers clamp.
func (p Projector) Project(lateral, depth float64) Projection {
	half := core.Lerp(p.NearHalfWidth, p.FarHalfWidth, depth)
	return Projection{
		X:     p.CenterX + (lateral-CourtCenter)/CourtCenter*half,
		Y:     core.Lerp(p.NearY, p.FarY, depth),
		Scale: core.Lerp(p.NearScale, p.FarScale, depth),
	}
}
