package constant

import "testing"

func TestAlwaysSameByte(t *testing.T) {
	g := New()
	for _, seed := range []uint64{0, 1, 123456} {
		g.SetSeed(seed)
		for i := 0; i < 10; i++ {
			if b := g.NormalizedByte(); b != DefaultValue {
				t.Fatalf("NormalizedByte() = %d, want %d", b, DefaultValue)
			}
		}
		if g.Seed() != seed {
			t.Fatalf("Seed() = %d, want %d", g.Seed(), seed)
		}
	}
}

func TestNormalizedRoundTrips(t *testing.T) {
	for _, v := range []byte{0, 1, 42, 128, 254, 255} {
		g := NewWithValue(v)
		n := g.Normalized()
		if n < 0 || n > 1 {
			t.Fatalf("Normalized() = %v, want [0, 1]", n)
		}
		if g.Raw() != uint64(v) {
			t.Fatalf("Raw() = %d, want %d", g.Raw(), v)
		}
	}
}
