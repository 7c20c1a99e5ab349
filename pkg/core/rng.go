package core

// LCG constants. This multiplier/increment pair is the classic Numerical
// Recipes choice; changing either breaks seed compatibility with
// previously generated mazes.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// LCG is a deterministic linear congruential generator with 32-bit state.
// Two instances built from the same seed produce identical sequences.
type LCG struct {
	state uint32
}

// NewLCG creates a generator seeded with the low 32 bits of seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the generator and returns a value in [0, 1).
func (g *LCG) Next() float64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return float64(g.state) / (1 << 32)
}

// IntN returns a uniform draw in [0, n), or 0 when n <= 0.
func (g *LCG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next() * float64(n))
}
