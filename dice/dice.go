// Package dice samples simulated dice rolls from a prng.Generator as a
// statistical sanity check of its normalized output.
package dice

import (
	"errors"
	"math"

	"github.com/tutils/tprng/prng"
)

const (
	// DefaultRolls is the sample size used when Request.Rolls is zero.
	DefaultRolls = 100
	// DefaultSides is the die size used when Request.Sides is zero.
	DefaultSides = 6
)

// ErrInvalidRolls indicates a negative sample size.
var ErrInvalidRolls = errors.New("rolls must be non-negative")

// ErrInvalidSides indicates a negative or single-sided die.
var ErrInvalidSides = errors.New("dice must have at least two sides")

// Request describes a sampling run. Zero fields take their defaults.
type Request struct {
	Rolls int
	Sides int
}

// Result captures the sampled faces and their summary statistics.
type Result struct {
	Sides int
	Rolls []int
	// Counts[f-1] is the number of rolls that landed on face f.
	Counts []int
	Mean   float64
	// StdDev is the population standard deviation of Rolls.
	StdDev float64
}

// ExpectedMean returns the mean of a fair die with the result's side count.
func (r Result) ExpectedMean() float64 {
	return float64(r.Sides+1) / 2
}

// Sample draws one normalized value per roll and maps it to a face with
// floor(value * sides) + 1.
//
// # Determinism
//
// Sample advances g exactly Rolls times and never reseeds it. Two generators
// in the same state produce the same Result.
//
// # Range
//
// Faces are always in [1, Sides]. A generator whose normalized output can
// reach exactly 1.0 (the middle-square method) would map that draw to
// Sides+1; such draws are counted as the top face.
//
// No uniformity threshold is enforced; the statistics are diagnostic.
func Sample(g prng.Generator, request Request) (Result, error) {
	rolls, sides := request.Rolls, request.Sides
	if rolls < 0 {
		return Result{}, ErrInvalidRolls
	}
	if rolls == 0 {
		rolls = DefaultRolls
	}
	if sides == 0 {
		sides = DefaultSides
	}
	if sides < 2 {
		return Result{}, ErrInvalidSides
	}

	result := Result{
		Sides:  sides,
		Rolls:  make([]int, rolls),
		Counts: make([]int, sides),
	}
	for i := range result.Rolls {
		face := rollDie(g, sides)
		result.Rolls[i] = face
		result.Counts[face-1]++
	}
	result.Mean, result.StdDev = meanStdDev(result.Rolls)

	return result, nil
}

// rollDie rolls a die with the provided number of sides.
func rollDie(g prng.Generator, sides int) int {
	face := int(math.Floor(g.Normalized()*float64(sides))) + 1
	if face > sides {
		return sides
	}
	if face < 1 {
		return 1
	}
	return face
}

func meanStdDev(values []int) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
