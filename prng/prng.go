// Package prng defines the generator contract shared by every pseudo-random
// number generator in tprng.
//
// A Generator is a small stateful value: each producing call advances the
// state exactly once, and reseeding with the same value reproduces the same
// draws. That determinism is what makes an XOR keystream built on top of a
// Generator symmetric.
package prng

import (
	"errors"
	"math"
)

// Generator is a seedable pseudo-random number generator.
type Generator interface {
	// SetSeed overwrites the internal state. Algorithm parameters are kept.
	SetSeed(seed uint64)
	// Seed returns the current internal state.
	Seed() uint64
	// Raw produces the next raw value. The value is also the new state.
	Raw() uint64
	// Normalized draws once and scales the raw value by the algorithm's
	// denominator.
	Normalized() float64
	// NormalizedByte draws once and scales the normalized value to a byte.
	NormalizedByte() byte
}

// ErrInvalidDigits is returned when a digit width cannot be represented by
// a 64-bit seed.
var ErrInvalidDigits = errors.New("invalid digit width")

// ToByte maps a normalized draw to floor(f * 255), clamped to the byte range.
func ToByte(f float64) byte {
	v := math.Floor(f * 255)
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}
