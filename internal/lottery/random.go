package lottery

import (
	"math"
	"math/rand/v2"
)

// Random is the source of uniform values in [0, 1) used to pick a winner
type Random interface {
	Float64() float64
}

// NewSeededRandom returns a deterministic generator for the given seed
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newDefaultRandom() Random {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomFunc adapts a plain function to Random
type RandomFunc func() float64

func (f RandomFunc) Float64() float64 { return f() }

// pickIndex maps a uniform value onto [0, n). Values outside [0, 1) are clamped.
func pickIndex(r float64, n int) int {
	if math.IsNaN(r) {
		return 0
	}
	i := int(r * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
