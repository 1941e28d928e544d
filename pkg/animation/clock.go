package animation

import "time"

// Clock provides time for animations. Only differences between readings
// matter, so any monotonically non-decreasing source works. Tests inject
// a fake clock through [Config.Clock] to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock uses system time. It is the default when Config.Clock is nil.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
