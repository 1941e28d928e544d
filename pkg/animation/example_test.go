package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/timing"
)

// This example drives an animation by hand with a fake clock and a stub
// scheduler, the same way tests do. In a real host you would leave Clock
// and Scheduler nil (or pass a [animation.Loop]) and let time pass.
func ExampleStart() {
	clock := motiontest.NewFakeClock()
	sched := motiontest.NewStubScheduler()

	a := animation.Start(animation.Config{
		From:      0,
		To:        100,
		Duration:  time.Second,
		Clock:     clock,
		Scheduler: sched,
		OnUpdate: func(value, _, timeProgress float64) {
			fmt.Printf("value %.0f at progress %.1f\n", value, timeProgress)
		},
		OnEnd: func() {
			fmt.Println("done")
		},
	})

	clock.Advance(500 * time.Millisecond)
	sched.Step()
	clock.Advance(500 * time.Millisecond)
	sched.Step()

	<-a.Done()
	fmt.Println("err:", a.Err())

	// Output:
	// value 0 at progress 0.0
	// value 50 at progress 0.5
	// value 100 at progress 1.0
	// done
	// err: <nil>
}

// This example shows easing: the value lags behind linear time at the
// start of an ease-in curve.
func ExampleConfig_timing() {
	clock := motiontest.NewFakeClock()
	sched := motiontest.NewStubScheduler()

	animation.Start(animation.Config{
		From:      0,
		To:        1,
		Duration:  time.Second,
		Timing:    timing.EaseIn(0.5),
		Clock:     clock,
		Scheduler: sched,
		OnUpdate: func(value, _, timeProgress float64) {
			fmt.Printf("time %.2f -> state %.2f\n", timeProgress, value)
		},
	})

	clock.Advance(250 * time.Millisecond)
	sched.Step()
	clock.Advance(250 * time.Millisecond)
	sched.Step()

	// Output:
	// time 0.00 -> state 0.00
	// time 0.25 -> state 0.18
	// time 0.50 -> state 0.44
}
