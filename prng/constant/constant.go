// Package constant provides a degenerate generator that always yields the
// same byte. XOR with it is the baseline every real keystream is compared
// against: it leaves the structure of the plaintext fully visible.
package constant

import "github.com/tutils/tprng/prng"

var _ prng.Generator = (*Generator)(nil)

// DefaultValue is the byte produced by New.
const DefaultValue = 42

// Generator produces a fixed byte. Seeding has no effect on its output.
type Generator struct {
	seed  uint64
	value byte
}

// New returns a generator producing DefaultValue.
func New() *Generator {
	return NewWithValue(DefaultValue)
}

// NewWithValue returns a generator producing v.
func NewWithValue(v byte) *Generator {
	return &Generator{value: v}
}

func (g *Generator) SetSeed(seed uint64) { g.seed = seed }

func (g *Generator) Seed() uint64 { return g.seed }

// Raw returns the fixed value.
func (g *Generator) Raw() uint64 { return uint64(g.value) }

// Normalized returns value/255 so that NormalizedByte round-trips.
func (g *Generator) Normalized() float64 { return float64(g.value) / 255 }

func (g *Generator) NormalizedByte() byte { return g.value }
