// Package midsquare implements von Neumann's middle-square method.
//
// The generator squares its seed, renders the square in decimal and keeps
// the centered digits as both the output and the next seed. Seeds 0 and 1
// are fixed points; that weakness belongs to the algorithm and is kept.
package midsquare

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"modernc.org/mathutil"

	"github.com/tutils/tprng/prng"
)

var _ prng.Generator = (*Generator)(nil)

const (
	// MaxDigits is the widest window whose values all fit a uint64 seed.
	MaxDigits = 19

	DefaultDigits = 5
)

// Generator is a middle-square generator with a configurable digit width.
type Generator struct {
	seed     uint64
	digits   int
	maxValue uint64
}

// New returns a generator with DefaultDigits and seed 0, adjusted by opts.
func New(opts ...Option) (*Generator, error) {
	opt := newOptions(opts...)
	g := &Generator{seed: opt.seed}
	if err := g.SetDigits(opt.digits); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNew is like New but panics on an invalid digit width.
func MustNew(opts ...Option) *Generator {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// SetDigits changes the extraction width and the normalization denominator
// together. The seed is left alone. Widths outside [1, MaxDigits] are
// rejected with prng.ErrInvalidDigits and leave g unchanged.
func (g *Generator) SetDigits(d int) error {
	if d < 1 || d > MaxDigits {
		return fmt.Errorf("%w: %d not in [1, %d]", prng.ErrInvalidDigits, d, MaxDigits)
	}
	g.digits = d
	g.maxValue = maxValue(d)
	return nil
}

// Digits returns the extraction width.
func (g *Generator) Digits() int {
	return g.digits
}

// MaxValue returns 10^Digits - 1, the normalization denominator.
func (g *Generator) MaxValue() uint64 {
	return g.maxValue
}

// SetSeed implements prng.Generator.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
}

// Seed implements prng.Generator.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Raw implements prng.Generator.
func (g *Generator) Raw() uint64 {
	sq := square(g.seed)
	if len(sq) < g.digits {
		sq = strings.Repeat("0", g.digits-len(sq)) + sq
	}
	left := (len(sq) - g.digits) / 2

	var v uint64
	for _, c := range []byte(sq[left : left+g.digits]) {
		v = v*10 + uint64(c-'0')
	}
	g.seed = v
	return v
}

// Normalized implements prng.Generator. The result is in [0, 1]; it is 1
// exactly when the extracted digits are all nines.
func (g *Generator) Normalized() float64 {
	return float64(g.Raw()) / float64(g.maxValue)
}

// NormalizedByte implements prng.Generator.
func (g *Generator) NormalizedByte() byte {
	return prng.ToByte(g.Normalized())
}

// square renders s*s in decimal.
func square(s uint64) string {
	hi, lo := mathutil.MulUint128_64(s, s)
	if hi == 0 {
		return strconv.FormatUint(lo, 10)
	}
	n := new(big.Int).SetUint64(hi)
	n.Lsh(n, 64)
	n.Or(n, new(big.Int).SetUint64(lo))
	return n.String()
}

func maxValue(d int) uint64 {
	v := uint64(1)
	for i := 0; i < d; i++ {
		v *= 10
	}
	return v - 1
}
