// Package timing provides timing functions for the motion animation engine.
//
// A timing function maps time-progress (the fraction of an animation's
// duration that has elapsed, in [0, 1]) to state-progress (the fraction of
// the distance between the animation's bounds that should be covered).
// State-progress is intentionally not clamped: curves that overshoot past
// 1 or undershoot below 0 are legitimate, and callers that need a clamped
// value must clamp it themselves.
//
// # Simple curves
//
// [Linear], [EaseIn], [EaseOut], [EaseInOut], [AllOrNothing], [Steps] and
// [Fixed] cover the common cases. [CubicBezier] builds custom ease curves
// from two control points.
//
// # Combinators
//
// [FlipX], [FlipY] and [Cached] build new functions from existing ones.
// [Gravitate] blends two curves; see [Gravitation]. [FromEase] adapts
// easing functions from the github.com/tanema/gween/ease catalogue.
package timing

import "math"

// Func maps time-progress in [0, 1] to state-progress.
//
// Implementations must be pure for a fixed receiver state: the animation
// engine may re-query the same input (in particular the final 1.0 render)
// and expects a stable answer.
type Func func(t float64) float64

// Linear is the identity timing function.
func Linear(t float64) float64 {
	return t
}

// CubicBezier returns an ease curve shaped by the control points
// (x1, y1) and (x2, y2).
//
// This is a closed-form polynomial blend approximating a cubic bezier
// ease, not a true parametric bezier solve: it evaluates without
// iteration and does not reproduce exact CSS cubic-bezier() shapes.
// That trade-off is deliberate. For the standard ease patterns (y1 = 0,
// y2 = 1) the endpoints stay exact.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	return func(t float64) float64 {
		strength1 := x1
		strength2 := 1 - x2
		delta1 := y1 - t
		delta2 := y2 - t
		inv := 1 - t
		return t + delta1*strength1*inv*inv + delta2*strength2*t*t
	}
}

// EaseInOut returns a curve that starts and ends slowly with acceleration
// in the middle. Strength controls how pronounced the easing is; 0.5 is
// the conventional default and 0 degrades to linear.
func EaseInOut(strength float64) Func {
	return CubicBezier(strength, 0, 1-strength, 1)
}

// EaseIn returns a curve that starts slowly and accelerates.
// Strength controls how pronounced the easing is; 0.5 is the
// conventional default.
func EaseIn(strength float64) Func {
	return CubicBezier(strength, 0, 1, 1)
}

// EaseOut returns a curve that starts quickly and decelerates.
// Strength controls how pronounced the easing is; 0.5 is the
// conventional default.
func EaseOut(strength float64) Func {
	return CubicBezier(0, 0, 1-strength, 1)
}

// AllOrNothing returns a step curve: 0 below the threshold, 1 at or
// above it.
func AllOrNothing(threshold float64) Func {
	return func(t float64) float64 {
		if t >= threshold {
			return 1
		}
		return 0
	}
}

// Steps quantizes progress into count equal buckets, holding each value
// until the next bucket boundary.
func Steps(count int) Func {
	n := float64(count)
	return func(t float64) float64 {
		return math.Floor(t*n) / n
	}
}

// Fixed returns a constant timing function that ignores its input.
func Fixed(value float64) Func {
	return func(float64) float64 {
		return value
	}
}
