package animation

import "sync"

// Scheduler arranges for a callback to run later, exactly once, without
// blocking the caller. The animation engine re-arms its tick loop through
// a Scheduler rather than spawning timers of its own, so the host decides
// what "later" means: the next display refresh, the next iteration of an
// event loop, or simply as soon as possible.
//
// Implementations must never invoke the callback synchronously from
// within Enqueue.
type Scheduler interface {
	Enqueue(callback func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(callback func())

// Enqueue calls s(callback).
func (s SchedulerFunc) Enqueue(callback func()) { s(callback) }

// asapScheduler runs each callback on a fresh goroutine. It is the
// default when Config.Scheduler is nil. Because callbacks then run off
// the caller's goroutine, hosts that also call lifecycle methods from
// other goroutines should prefer [Loop] or provide their own
// serialization.
type asapScheduler struct{}

func (asapScheduler) Enqueue(callback func()) { go callback() }

// Loop is a Scheduler that executes callbacks sequentially on a single
// goroutine, giving hosts without a native frame loop a deterministic
// executor. Queue lifecycle operations through Enqueue as well and every
// interaction with an animation stays on one goroutine.
//
//	loop := animation.NewLoop()
//	go loop.Run()
//	defer loop.Stop()
type Loop struct {
	queue chan func()
	stop  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with a buffered callback queue.
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 64),
		stop:  make(chan struct{}),
	}
}

// Enqueue queues a callback for execution. It blocks if the queue is full
// and is a no-op after Stop.
func (l *Loop) Enqueue(callback func()) {
	select {
	case <-l.stop:
	case l.queue <- callback:
	}
}

// Run executes queued callbacks until Stop is called. It is intended to
// be run on its own goroutine.
func (l *Loop) Run() {
	for {
		select {
		case <-l.stop:
			return
		case callback := <-l.queue:
			callback()
		}
	}
}

// Stop terminates the loop. Pending callbacks are discarded.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stop) })
}
