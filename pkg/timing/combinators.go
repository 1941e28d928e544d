package timing

import "math/rand/v2"

// FlipX mirrors f along the input axis: the returned function evaluates
// f(1 - t). An ease-in flipped on X runs its shape backwards in time.
func FlipX(f Func) Func {
	return func(t float64) float64 {
		return f(1 - t)
	}
}

// FlipY mirrors f along the output axis: the returned function evaluates
// 1 - f(t). Flipping an ease-in on both axes yields the matching ease-out.
func FlipY(f Func) Func {
	return func(t float64) float64 {
		return 1 - f(t)
	}
}

// Cached memoizes f keyed by the exact input value.
//
// Floating-point progress values are rarely bit-identical across frames,
// so the cache only pays off when callers re-query values that originate
// from the same computation — most notably the engine's final render at
// exactly 1.0, and non-deterministic functions like [Random] that must
// answer consistently for a repeated input.
//
// The returned function keeps internal state and is not safe for
// concurrent use from multiple goroutines.
func Cached(f Func) Func {
	cache := make(map[float64]float64)
	return func(t float64) float64 {
		if v, ok := cache[t]; ok {
			return v
		}
		v := f(t)
		cache[t] = v
		return v
	}
}

// Random returns a timing function yielding a uniformly distributed value
// in [0, 1) per distinct input. The result is wrapped in [Cached] so that
// re-querying the same progress value within one animation run is stable.
func Random() Func {
	return Cached(func(float64) float64 {
		return rand.Float64()
	})
}
