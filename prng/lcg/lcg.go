// Package lcg implements a linear congruential generator with the ANSI C
// parameters.
package lcg

import "github.com/tutils/tprng/prng"

var _ prng.Generator = (*Generator)(nil)

// ANSI C parameters. The modulus is applied with a mask.
const (
	Multiplier = 1103515245
	Increment  = 12345
	Modulus    = 1 << 32

	// DefaultSeed is the state of a generator that was never seeded.
	DefaultSeed = 123456
)

// Generator stores the LCG state.
//
// The step is computed in uint64. The product may wrap at 2^64, which is
// exact modulo 2^32, so any uint64 seed reduces as it would with unbounded
// integers.
type Generator struct {
	seed uint64
}

// New returns a generator seeded with DefaultSeed.
func New() *Generator {
	return &Generator{seed: DefaultSeed}
}

// NewWithSeed returns a generator seeded with seed.
func NewWithSeed(seed uint64) prng.Generator {
	return &Generator{seed: seed}
}

// SetSeed implements prng.Generator.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
}

// Seed implements prng.Generator.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Raw implements prng.Generator. The result is always in [0, Modulus).
func (g *Generator) Raw() uint64 {
	g.seed = (Multiplier*g.seed + Increment) & (Modulus - 1)
	return g.seed
}

// Normalized implements prng.Generator. The result is in [0, 1).
func (g *Generator) Normalized() float64 {
	return float64(g.Raw()) / Modulus
}

// NormalizedByte implements prng.Generator.
func (g *Generator) NormalizedByte() byte {
	return prng.ToByte(g.Normalized())
}
