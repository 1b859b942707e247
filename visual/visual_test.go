package visual

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/tutils/tprng/dice"
	"github.com/tutils/tprng/prng/lcg"
)

func wellFormed(t *testing.T, doc []byte) {
	t.Helper()
	d := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := d.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("malformed svg: %v\n%s", err, doc)
		}
	}
}

func TestScatter(t *testing.T) {
	buf := &bytes.Buffer{}
	g := lcg.New()
	if err := Scatter(buf, g, 300, "LCG"); err != nil {
		t.Fatalf("Scatter error: %v", err)
	}
	wellFormed(t, buf.Bytes())
	if n := strings.Count(buf.String(), "<circle"); n != 300 {
		t.Fatalf("got %d circles, want 300", n)
	}

	ref := lcg.New()
	for i := 0; i < 600; i++ {
		ref.Raw()
	}
	if g.Seed() != ref.Seed() {
		t.Fatal("Scatter did not draw exactly two bytes per point")
	}
}

func TestScatterRejectsEmpty(t *testing.T) {
	if err := Scatter(io.Discard, lcg.New(), 0, "x"); !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("Scatter error = %v, want %v", err, ErrInvalidPoints)
	}
}

func TestHistogram(t *testing.T) {
	result, err := dice.Sample(lcg.New(), dice.Request{Rolls: 600})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Histogram(buf, result, "LCG dice"); err != nil {
		t.Fatalf("Histogram error: %v", err)
	}
	wellFormed(t, buf.Bytes())
	// One background rect plus one bar per face.
	if n := strings.Count(buf.String(), "<rect"); n != 7 {
		t.Fatalf("got %d rects, want 7", n)
	}
	if !strings.Contains(buf.String(), "<line") {
		t.Fatal("missing fair-die guide line")
	}
}

func TestHistogramRejectsEmpty(t *testing.T) {
	if err := Histogram(io.Discard, dice.Result{}, "x"); !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("Histogram error = %v, want %v", err, ErrInvalidPoints)
	}
}
