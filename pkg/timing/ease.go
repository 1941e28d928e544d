package timing

import "github.com/tanema/gween/ease"

// FromEase adapts an easing function from github.com/tanema/gween/ease
// into a [Func], making the full gween catalogue (bounce, elastic, back,
// and friends) available to the animation engine:
//
//	cfg.Timing = timing.FromEase(ease.OutBounce)
//
// gween easing functions take (time, begin, change, duration); the adapter
// evaluates them over a unit interval so the result is plain progress.
func FromEase(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}
