package timing

import (
	"math"
	"testing"
)

func TestGravitateIdenticalCurvesIsIdentity(t *testing.T) {
	g := Gravitate(Linear, Linear)
	for _, v := range []float64{0, 0.3, 0.7, 1} {
		if got := g.At(v); got != v {
			t.Errorf("At(%v) = %v, want %v (zero divergence)", v, got, v)
		}
	}
}

func TestGravitatePullsTowardGravitator(t *testing.T) {
	// Linear diverges from the constant 0.5 curve below it until they
	// intersect at 0.5. Within that section the pull grows with
	// divergence, so every output lies between the two curves.
	g := Gravitate(Linear, Fixed(0.5))
	for _, v := range []float64{0.1, 0.2, 0.3, 0.4} {
		got := g.At(v)
		if got < v || got > 0.5 {
			t.Errorf("At(%v) = %v, want within [%v, 0.5]", v, got, v)
		}
	}
}

func TestGravitateTouchesGravitatorAtPeakDivergence(t *testing.T) {
	g := Gravitate(Linear, Fixed(0.5))

	// Scanning from 0.2 the section runs to the intersection at 0.5, so
	// the maximum divergence inside it is at the query itself and the
	// output lands exactly on the gravitator.
	if got := g.At(0.2); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("At(0.2) = %v, want 0.5", got)
	}
}

func TestGravitateRescansBeyondSection(t *testing.T) {
	g := Gravitate(Linear, Fixed(0.5))

	g.At(0.2)
	firstEnd := g.sectionEnd
	if firstEnd >= 0.9 {
		t.Fatalf("section from 0.2 should end near the 0.5 intersection, got %v", firstEnd)
	}

	// Querying past the section forces a rescan starting at the query.
	got := g.At(0.9)
	if g.sectionStart != 0.9 {
		t.Errorf("sectionStart = %v, want 0.9", g.sectionStart)
	}
	if g.sectionEnd != 1 {
		t.Errorf("sectionEnd = %v, want 1 (input exhausted)", g.sectionEnd)
	}

	// Above the intersection the pull is downward: output sits between
	// the gravitator and the orbitor.
	if got < 0.5 || got > 0.9 {
		t.Errorf("At(0.9) = %v, want within [0.5, 0.9]", got)
	}
}

func TestGravitateSectionMaxDelta(t *testing.T) {
	g := Gravitate(Linear, Fixed(0.5))
	g.At(0.9)

	// Divergence grows from 0.4 at the section start to 0.5 at input 1.0.
	if math.Abs(g.maxDelta-0.5) > 1e-9 {
		t.Errorf("maxDelta = %v, want 0.5", g.maxDelta)
	}
}
