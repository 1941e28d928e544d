package timing

import "math"

// sectionStep is the sampling granularity used when scanning for the
// divergence extremum of a section.
const sectionStep = 0.01

// Gravitation attracts an orbitor curve toward a gravitator curve.
//
// The input range is divided into sections: contiguous runs of progress
// over which the sign of orbitor(t) - gravitator(t) does not flip. Within
// a section the output is pulled from the orbitor toward the gravitator in
// proportion to how close their divergence at t is to the section's
// maximum divergence, so the curves kiss at the divergence peak and
// separate again toward the section's ends.
//
// Gravitation caches the most recently scanned section and rescans when
// queried outside it. It is therefore stateful and intended for the
// monotonically increasing queries of a single animation run; it is not
// safe for concurrent use from multiple goroutines.
type Gravitation struct {
	orbitor    Func
	gravitator Func

	sectionStart float64
	sectionEnd   float64
	maxDelta     float64
	scanned      bool
}

// Gravitate returns a Gravitation blending orbitor toward gravitator.
// Use the At method as a [Func]: cfg.Timing = Gravitate(a, b).At.
func Gravitate(orbitor, gravitator Func) *Gravitation {
	return &Gravitation{orbitor: orbitor, gravitator: gravitator}
}

// At evaluates the composite curve at t.
func (g *Gravitation) At(t float64) float64 {
	if !g.scanned || t < g.sectionStart || t > g.sectionEnd {
		g.scan(t)
	}

	o := g.orbitor(t)
	delta := g.gravitator(t) - o
	if g.maxDelta == 0 {
		return o
	}
	return o + delta*(math.Abs(delta)/g.maxDelta)
}

// scan rebuilds the cached section starting at from. It walks forward in
// sectionStep increments until the divergence sign flips (the curves
// intersect) or the input range is exhausted at 1.0, recording the maximum
// absolute divergence seen along the way.
func (g *Gravitation) scan(from float64) {
	g.sectionStart = from
	g.maxDelta = 0
	g.scanned = true

	startDelta := g.orbitor(from) - g.gravitator(from)
	sign := math.Signbit(startDelta)

	t := from
	for {
		delta := g.orbitor(t) - g.gravitator(t)
		if delta != 0 && math.Signbit(delta) != sign {
			// Intersection: the section ends just before the flip.
			g.sectionEnd = t
			return
		}
		if abs := math.Abs(delta); abs > g.maxDelta {
			g.maxDelta = abs
		}
		if t >= 1 {
			g.sectionEnd = t
			return
		}
		t = math.Min(t+sectionStep, 1)
	}
}
