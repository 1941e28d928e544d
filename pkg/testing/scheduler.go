package testing

// StubScheduler queues callbacks and runs them only when the test says
// so, making each animation tick an explicit step. Enqueue never invokes
// the callback synchronously, matching the Scheduler contract.
//
// StubScheduler is not safe for concurrent use; tests drive it from a
// single goroutine.
type StubScheduler struct {
	queue []func()
}

// NewStubScheduler returns an empty StubScheduler.
func NewStubScheduler() *StubScheduler {
	return &StubScheduler{}
}

// Enqueue appends a callback to the queue.
func (s *StubScheduler) Enqueue(callback func()) {
	s.queue = append(s.queue, callback)
}

// Pending returns the number of queued callbacks.
func (s *StubScheduler) Pending() int {
	return len(s.queue)
}

// Step runs the oldest queued callback. It returns false if the queue
// was empty.
func (s *StubScheduler) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	callback := s.queue[0]
	s.queue = s.queue[1:]
	callback()
	return true
}

// Drain runs queued callbacks (including ones they enqueue) until the
// queue is empty or limit steps have run, and returns the number of
// steps taken. A limit guards against an animation that never stops
// re-arming under a fake clock that nobody advances.
func (s *StubScheduler) Drain(limit int) int {
	steps := 0
	for steps < limit && s.Step() {
		steps++
	}
	return steps
}
