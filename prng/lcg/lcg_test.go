package lcg

import "testing"

func TestNewUsesDefaultSeed(t *testing.T) {
	g := New()
	if g.Seed() != DefaultSeed {
		t.Fatalf("Seed() = %d, want %d", g.Seed(), DefaultSeed)
	}
}

func TestRawRecurrence(t *testing.T) {
	g := New()
	g.SetSeed(123456)

	want := []uint64{3510437241, 2738643646, 2210406175}
	for i, w := range want {
		if got := g.Raw(); got != w {
			t.Fatalf("draw %d: Raw() = %d, want %d", i, got, w)
		}
		if g.Seed() != w {
			t.Fatalf("draw %d: Seed() = %d, want %d", i, g.Seed(), w)
		}
	}
}

func TestRawMatchesFormula(t *testing.T) {
	for _, seed := range []uint64{0, 1, 5, 123456, Modulus - 1, 1 << 40, 1<<64 - 1} {
		g := NewWithSeed(seed)
		want := new(bigMod).step(seed)
		if got := g.Raw(); got != want {
			t.Fatalf("seed %d: Raw() = %d, want %d", seed, got, want)
		}
	}
}

func TestLargeSeedReducesModulo(t *testing.T) {
	a := NewWithSeed(1<<40 + 5)
	b := NewWithSeed(5)
	if got, want := a.Raw(), b.Raw(); got != want {
		t.Fatalf("Raw() = %d, want %d", got, want)
	}
	if got := NewWithSeed(5).Raw(); got != 1222621274 {
		t.Fatalf("Raw() = %d, want 1222621274", got)
	}
}

func TestDeterministic(t *testing.T) {
	a := NewWithSeed(98765)
	b := NewWithSeed(98765)
	for i := 0; i < 1000; i++ {
		if x, y := a.Raw(), b.Raw(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestNormalizedBounds(t *testing.T) {
	g := New()
	for i := 0; i < 10000; i++ {
		v := g.Normalized()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d: Normalized() = %v, want [0, 1)", i, v)
		}
	}
}

func TestNormalizedByte(t *testing.T) {
	g := NewWithSeed(123456)
	want := []byte{208, 162, 131, 146, 159}
	for i, w := range want {
		if got := g.NormalizedByte(); got != w {
			t.Fatalf("draw %d: NormalizedByte() = %d, want %d", i, got, w)
		}
	}
}
