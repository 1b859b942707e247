package dice

import (
	"errors"
	"math"
	"testing"

	"github.com/tutils/tprng/prng/constant"
	"github.com/tutils/tprng/prng/lcg"
	"github.com/tutils/tprng/prng/midsquare"
)

// TestSampleDefaults ensures zero requests roll 100 six-sided dice.
func TestSampleDefaults(t *testing.T) {
	result, err := Sample(lcg.New(), Request{})
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if len(result.Rolls) != DefaultRolls {
		t.Fatalf("expected %d rolls, got %d", DefaultRolls, len(result.Rolls))
	}
	if result.Sides != DefaultSides || len(result.Counts) != DefaultSides {
		t.Fatalf("expected %d sides, got %d (%d counts)", DefaultSides, result.Sides, len(result.Counts))
	}
}

// TestSampleGoldenLCG pins the first rolls and the statistics of the default LCG.
func TestSampleGoldenLCG(t *testing.T) {
	result, err := Sample(lcg.New(), Request{Rolls: 100})
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	want := []int{5, 4, 4, 4, 4, 4, 3, 4, 3, 2}
	for i, w := range want {
		if result.Rolls[i] != w {
			t.Fatalf("unexpected rolls: %v, want prefix %v", result.Rolls[:len(want)], want)
		}
	}
	if result.Mean != 3.5 {
		t.Fatalf("expected mean 3.5, got %v", result.Mean)
	}
	if math.Abs(result.StdDev-1.7804493814764855) > 1e-12 {
		t.Fatalf("expected stdev 1.7804493814764855, got %v", result.StdDev)
	}
}

// TestSampleDistributionLCG checks a large LCG sample is close to a fair die.
func TestSampleDistributionLCG(t *testing.T) {
	result, err := Sample(lcg.New(), Request{Rolls: 10000})
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if math.Abs(result.Mean-result.ExpectedMean()) > 0.2 {
		t.Fatalf("mean %v not within 0.2 of %v", result.Mean, result.ExpectedMean())
	}
	total := 0
	for face, n := range result.Counts {
		if n == 0 {
			t.Fatalf("face %d never rolled", face+1)
		}
		total += n
	}
	if total != 10000 {
		t.Fatalf("counts sum to %d, want 10000", total)
	}
	for i, r := range result.Rolls {
		if r < 1 || r > 6 {
			t.Fatalf("roll %d = %d, want [1, 6]", i, r)
		}
	}
}

// TestSampleClampsTopFace ensures a normalized draw of exactly 1 lands on the top face.
func TestSampleClampsTopFace(t *testing.T) {
	g := midsquare.MustNew(midsquare.WithDigits(1), midsquare.WithSeed(3))
	if v := g.Normalized(); v != 1 {
		t.Fatalf("setup: Normalized() = %v, want 1", v)
	}
	g.SetSeed(3)

	result, err := Sample(g, Request{Rolls: 1})
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	if result.Rolls[0] != 6 {
		t.Fatalf("expected top face 6, got %d", result.Rolls[0])
	}
}

// TestSampleConstantGenerator ensures a degenerate generator yields a single face.
func TestSampleConstantGenerator(t *testing.T) {
	result, err := Sample(constant.New(), Request{Rolls: 20, Sides: 6})
	if err != nil {
		t.Fatalf("Sample returned error: %v", err)
	}
	// 42/255*6 = 0.988...
	if result.Counts[0] != 20 {
		t.Fatalf("expected every roll on face 1, got counts %v", result.Counts)
	}
	if result.Mean != 1 || result.StdDev != 0 {
		t.Fatalf("expected mean 1 stdev 0, got %v %v", result.Mean, result.StdDev)
	}
}

// TestSampleDeterministic ensures equal generator state gives equal results.
func TestSampleDeterministic(t *testing.T) {
	a, _ := Sample(lcg.NewWithSeed(99), Request{Rolls: 50, Sides: 20})
	b, _ := Sample(lcg.NewWithSeed(99), Request{Rolls: 50, Sides: 20})
	for i := range a.Rolls {
		if a.Rolls[i] != b.Rolls[i] {
			t.Fatalf("roll %d differs: %d != %d", i, a.Rolls[i], b.Rolls[i])
		}
	}
}

// TestSampleRejectsInvalidRequests ensures invalid requests are rejected.
func TestSampleRejectsInvalidRequests(t *testing.T) {
	tcs := []struct {
		req  Request
		want error
	}{
		{req: Request{Rolls: -1}, want: ErrInvalidRolls},
		{req: Request{Sides: 1}, want: ErrInvalidSides},
		{req: Request{Sides: -6}, want: ErrInvalidSides},
	}
	for _, tc := range tcs {
		_, err := Sample(lcg.New(), tc.req)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Sample(%+v) error = %v, want %v", tc.req, err, tc.want)
		}
	}
}

func TestMeanStdDev(t *testing.T) {
	mean, sd := meanStdDev([]int{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 || sd != 2 {
		t.Fatalf("meanStdDev = %v, %v, want 5, 2", mean, sd)
	}
}
