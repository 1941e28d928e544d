package animation

import (
	"testing"
	"time"
)

func TestLoopRunsCallbacksInOrder(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	results := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		n := i
		loop.Enqueue(func() { results <- n })
	}

	for want := 1; want <= 3; want++ {
		select {
		case got := <-results:
			if got != want {
				t.Fatalf("callback order: got %d, want %d", got, want)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for callback")
		}
	}
}

func TestLoopEnqueueAfterStop(t *testing.T) {
	loop := NewLoop()
	loop.Stop()

	// Must not block or panic; the callback is discarded.
	loop.Enqueue(func() { t.Error("callback ran after Stop") })
	time.Sleep(10 * time.Millisecond)
}

func TestLoopStopIdempotent(t *testing.T) {
	loop := NewLoop()
	loop.Stop()
	loop.Stop()
}

func TestSchedulerFunc(t *testing.T) {
	ran := false
	s := SchedulerFunc(func(callback func()) { callback() })
	s.Enqueue(func() { ran = true })
	if !ran {
		t.Error("SchedulerFunc should forward the callback")
	}
}
