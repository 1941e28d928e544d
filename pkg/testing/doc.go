// Package testing provides test doubles for deterministic animation tests.
//
// # Quick Start
//
// Drive an animation by hand with a fake clock and a stub scheduler:
//
//	func TestFade(t *testing.T) {
//	    clock := motiontest.NewFakeClock()
//	    sched := motiontest.NewStubScheduler()
//
//	    a := animation.Start(animation.Config{
//	        From: 1, To: 0,
//	        Duration:  time.Second,
//	        Clock:     clock,
//	        Scheduler: sched,
//	        OnUpdate:  func(v, sp, tp float64) { /* assert */ },
//	    })
//
//	    clock.Advance(500 * time.Millisecond)
//	    sched.Step() // one tick renders at time-progress 0.5
//	    _ = a
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
