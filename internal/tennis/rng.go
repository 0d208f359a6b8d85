package tennis

// Source supplies the uniform samples behind every probability draw:
// question arming, opponent error and bounce jitter. *math/rand.Rand
// satisfies it, as does RNG.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// RNG is a small deterministic generator whose whole state is one integer,
// so a match can be replayed from its seed.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
// Uses the high 53 bits, which are the well-mixed ones for an LCG.
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the generator state.
func (r *RNG) State() uint64 {
	return r.state
}
