// Package animation drives a single numeric value from a start value to
// an end value over a fixed duration.
//
// # Core Components
//
//   - [Animation]: the engine. Samples an injected [Clock], maps elapsed
//     time through a timing function, interpolates between From and To,
//     and delivers the result to OnUpdate once per scheduled tick.
//
//   - [Config]: an immutable snapshot of everything an animation needs:
//     bounds, duration, timing function, frame-rate cap, lifecycle
//     callbacks, and the injected [Clock] and [Scheduler].
//
//   - [Scheduler]: the host's "run this later" primitive. The engine never
//     spawns timers of its own; it re-arms one pending tick at a time.
//
// # Basic Usage
//
//	a := animation.Start(animation.Config{
//	    From:     0,
//	    To:       100,
//	    Duration: 300 * time.Millisecond,
//	    Timing:   timing.EaseInOut(0.5),
//	    OnUpdate: func(value, stateProgress, timeProgress float64) {
//	        widget.SetWidth(value)
//	    },
//	})
//
//	if err := a.Wait(ctx); err != nil {
//	    // canceled, or a callback panicked
//	}
//
// # Lifecycle
//
// An animation moves through Idle → Running ⇄ Paused → Ended, with Cancel
// reachable from every non-Ended state. Ended and Canceled are terminal;
// every lifecycle method is a no-op once a terminal state is reached, so
// redundant calls are always safe.
//
// # Threading
//
// All engine state is confined to the scheduling discipline of the host:
// ticks run strictly sequentially because only one is ever in flight, and
// lifecycle methods are expected to run interleaved with ticks, not
// concurrently with them. Hosts whose scheduler hops goroutines (including
// the default one) must serialize access to one Animation externally —
// [Loop] is the easiest way. Independent animations share nothing.
package animation

import (
	"context"
	"errors"
	"math"
	"time"

	merrors "github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/timing"
)

// ErrCanceled is the terminal error of an animation that was canceled
// before completing.
var ErrCanceled = errors.New("animation canceled")

// Config describes an animation. The zero value of every optional field
// selects a sensible default. New copies the Config, so mutating it after
// construction has no effect on the animation.
//
// The engine does not validate configuration: Duration <= 0 is treated as
// instant completion and MaxFPS <= 0 disables throttling, but nonsensical
// values beyond that (NaN bounds, negative Progress) are the caller's
// responsibility.
type Config struct {
	// From and To are the interpolation bounds. To < From is valid and
	// produces a descending value.
	From float64
	To   float64

	// Duration is the time a full sweep from time-progress 0 to 1 takes.
	// Non-positive durations complete instantly on Start.
	Duration time.Duration

	// Progress is the initial time-progress fraction, letting an
	// animation start partway through. Defaults to 0.
	Progress float64

	// Timing maps time-progress to state-progress. Defaults to
	// timing.Linear.
	Timing timing.Func

	// MaxFPS caps how often OnUpdate fires. Ticks that arrive early are
	// rescheduled without rendering; the time math is unaffected, only
	// the sampling rate. Zero or negative disables the cap.
	MaxFPS float64

	// OnStart fires once when Start transitions the animation out of
	// Idle. The clock is re-read after it returns, so slow callbacks do
	// not skew timing.
	OnStart func()

	// OnUpdate receives every rendered frame: the interpolated value,
	// the state-progress that produced it, and the clamped time-progress.
	// It is never invoked concurrently with itself for one animation.
	OnUpdate func(value, stateProgress, timeProgress float64)

	// OnPause and OnResume fire on the matching transitions with the
	// accumulated time-progress.
	OnPause  func(timeProgress float64)
	OnResume func(timeProgress float64)

	// OnEnd fires once on natural completion, after the final render.
	OnEnd func()

	// OnCancel fires once on cancellation. No final frame is rendered.
	OnCancel func()

	// Clock supplies time. Defaults to SystemClock.
	Clock Clock

	// Scheduler re-arms the tick loop. Defaults to running each tick on
	// a fresh goroutine as soon as possible.
	Scheduler Scheduler
}

// Animation interpolates a value between two bounds over time.
//
// Completion is observable two independent ways that compose rather than
// replace each other: the OnEnd/OnCancel callbacks, and the
// [Animation.Done] channel with [Animation.Err] (or [Animation.Wait]).
type Animation struct {
	cfg       Config
	timing    timing.Func
	clock     Clock
	scheduler Scheduler

	// timeProgress accumulates completed run segments; the currently
	// elapsing segment (since resumeTime) is added on top at each tick.
	timeProgress float64

	// resumeTime and pauseTime are mutually exclusive: at most one is
	// set, marking "running since" vs "paused since".
	startTime  time.Time
	pauseTime  time.Time
	resumeTime time.Time
	endTime    time.Time
	cancelTime time.Time

	lastRender time.Time

	// scheduled guards the one-tick-in-flight invariant: a pause
	// followed by an immediate resume must not arm a second tick chain
	// next to the one still sitting in the scheduler's queue.
	scheduled bool

	done    chan struct{}
	err     error
	settled bool
}

// New creates an animation from a snapshot of cfg without starting it.
func New(cfg Config) *Animation {
	a := &Animation{
		cfg:          cfg,
		timing:       cfg.Timing,
		clock:        cfg.Clock,
		scheduler:    cfg.Scheduler,
		timeProgress: cfg.Progress,
		done:         make(chan struct{}),
	}
	if a.timing == nil {
		a.timing = timing.Linear
	}
	if a.clock == nil {
		a.clock = SystemClock{}
	}
	if a.scheduler == nil {
		a.scheduler = asapScheduler{}
	}
	return a
}

// Start is a convenience entry point that creates an animation and
// starts it immediately. Use [New] to construct without starting.
func Start(cfg Config) *Animation {
	a := New(cfg)
	a.Start()
	return a
}

// IsStarted reports whether Start has been called.
func (a *Animation) IsStarted() bool { return !a.startTime.IsZero() }

// IsPaused reports whether the animation is currently paused.
func (a *Animation) IsPaused() bool { return !a.pauseTime.IsZero() }

// IsEnded reports whether the animation completed naturally.
func (a *Animation) IsEnded() bool { return !a.endTime.IsZero() }

// IsCanceled reports whether the animation was canceled.
func (a *Animation) IsCanceled() bool { return !a.cancelTime.IsZero() }

// IsRunning reports whether the animation is actively ticking: started
// and neither paused nor in a terminal state.
func (a *Animation) IsRunning() bool {
	return a.IsStarted() && !a.IsEnded() && !a.IsPaused() && !a.IsCanceled()
}

func (a *Animation) isTerminal() bool {
	return a.IsEnded() || a.IsCanceled()
}

// Start begins the animation: it records the start time, fires OnStart,
// renders the initial frame at the configured starting progress, and arms
// the tick loop. No-op if already started or terminal.
func (a *Animation) Start() {
	if a.IsStarted() || a.isTerminal() {
		return
	}
	a.startTime = a.clock.Now()
	a.invoke("animation.OnStart", a.cfg.OnStart)
	if a.isTerminal() {
		return
	}

	// Re-read the clock so OnStart's own duration does not count
	// against the first run segment.
	a.resumeTime = a.clock.Now()
	a.render(a.timeProgress)
	if a.isTerminal() {
		return
	}
	if a.cfg.Duration <= 0 {
		a.End()
		return
	}
	a.schedule()
}

// Pause freezes the animation, folding the elapsed run segment into the
// accumulated time-progress, and fires OnPause with that progress.
// No-op unless the animation is currently running.
func (a *Animation) Pause() {
	if !a.IsRunning() {
		return
	}
	now := a.clock.Now()
	a.timeProgress = math.Min(1, a.timeProgress+a.segmentProgress(now))
	a.resumeTime = time.Time{}
	a.pauseTime = now

	// The loop halts on its own: the already-scheduled tick observes
	// IsRunning() == false and exits without re-arming.
	if a.cfg.OnPause != nil {
		p := a.timeProgress
		a.invoke("animation.OnPause", func() { a.cfg.OnPause(p) })
	}
}

// Resume continues a paused animation from its accumulated time-progress
// and re-arms the tick loop. No-op unless currently paused.
func (a *Animation) Resume() {
	if !a.IsPaused() || a.isTerminal() {
		return
	}
	a.pauseTime = time.Time{}
	if a.cfg.OnResume != nil {
		p := a.timeProgress
		a.invoke("animation.OnResume", func() { a.cfg.OnResume(p) })
	}
	if a.isTerminal() {
		return
	}

	// Same rationale as Start: the callback ran on our time, not the
	// animation's.
	a.resumeTime = a.clock.Now()
	a.schedule()
}

// End completes the animation. A final frame is always rendered at
// time-progress exactly 1.0 regardless of clock drift, so OnUpdate is
// guaranteed to observe the exact target value; time-progress is pinned
// there, OnEnd fires, and the Done channel settles with a nil error.
// Called by the engine on natural completion; callers may also invoke it
// to fast-forward. No-op if already ended or canceled.
func (a *Animation) End() {
	if a.isTerminal() {
		return
	}
	a.render(1)
	if a.isTerminal() {
		return
	}
	a.timeProgress = 1
	a.resumeTime = time.Time{}
	a.pauseTime = time.Time{}
	a.endTime = a.clock.Now()
	a.invoke("animation.OnEnd", a.cfg.OnEnd)
	a.settle(nil)
}

// Cancel aborts the animation. No final frame is rendered: the last value
// OnUpdate observed is whatever the most recent tick produced. OnCancel
// fires and the Done channel settles with ErrCanceled. No-op if already
// ended or canceled.
func (a *Animation) Cancel() {
	if a.isTerminal() {
		return
	}
	a.resumeTime = time.Time{}
	a.cancelTime = a.clock.Now()
	a.invoke("animation.OnCancel", a.cfg.OnCancel)
	a.settle(ErrCanceled)
}

// Done returns a channel that is closed when the animation reaches a
// terminal state. After it closes, Err reports the outcome. The channel
// is already closed if the animation is already terminal, so late callers
// observe a pre-settled result.
func (a *Animation) Done() <-chan struct{} { return a.done }

// Err returns nil while the animation is live or after natural
// completion, ErrCanceled after cancellation, and the recovered
// *errors.PanicError if a lifecycle callback panicked.
func (a *Animation) Err() error { return a.err }

// Wait blocks until the animation reaches a terminal state or ctx is
// done, returning the animation's Err or ctx.Err respectively.
func (a *Animation) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.done:
		return a.err
	}
}

// tick is the self-rescheduling loop body. Each invocation arrives via
// the scheduler; a tick that finds the animation no longer running simply
// exits, which is how Pause, End, and Cancel halt the loop without a
// cancellation token.
func (a *Animation) tick() {
	a.scheduled = false
	if !a.IsRunning() {
		return
	}
	now := a.clock.Now()

	// Frame-rate throttle: early ticks re-arm without rendering. Only
	// the sampling rate changes; the progress math below is driven by
	// the clock, not by how many ticks rendered.
	if a.cfg.MaxFPS > 0 && now.Sub(a.lastRender) < a.frameInterval() {
		a.schedule()
		return
	}

	p := a.timeProgress + a.segmentProgress(now)
	if p >= 1 {
		a.End()
		return
	}
	a.render(p)
	if a.isTerminal() {
		return
	}
	a.schedule()
}

// render delivers one frame: clamps time-progress, applies the timing
// function, interpolates, and hands the result to OnUpdate. This is the
// only path that invokes OnUpdate. State-progress is deliberately not
// clamped so overshoot curves pass through.
func (a *Animation) render(timeProgress float64) {
	timeProgress = clampUnit(timeProgress)
	a.lastRender = a.clock.Now()
	a.invoke("animation.OnUpdate", func() {
		stateProgress := a.timing(timeProgress)
		value := a.cfg.From + (a.cfg.To-a.cfg.From)*stateProgress
		if a.cfg.OnUpdate != nil {
			a.cfg.OnUpdate(value, stateProgress, timeProgress)
		}
	})
}

func (a *Animation) schedule() {
	if a.scheduled {
		return
	}
	a.scheduled = true
	a.scheduler.Enqueue(a.tick)
}

// segmentProgress converts the run segment elapsing since resumeTime into
// a fraction of the configured duration.
func (a *Animation) segmentProgress(now time.Time) float64 {
	if a.cfg.Duration <= 0 || a.resumeTime.IsZero() {
		return 0
	}
	return now.Sub(a.resumeTime).Seconds() / a.cfg.Duration.Seconds()
}

func (a *Animation) frameInterval() time.Duration {
	return time.Duration(float64(time.Second) / a.cfg.MaxFPS)
}

// invoke runs a caller-supplied callback, recovering panics. A panicking
// callback reports through the global error handler and fails the
// animation: it becomes canceled (unless already terminal) and the Done
// channel settles with the PanicError.
func (a *Animation) invoke(op string, fn func()) {
	if fn == nil {
		return
	}
	defer merrors.RecoverWithCallback(op, a.fail)
	fn()
}

func (a *Animation) fail(err *merrors.PanicError) {
	if !a.isTerminal() {
		a.resumeTime = time.Time{}
		a.cancelTime = a.clock.Now()
	}
	a.settle(err)
}

// settle closes the Done channel exactly once.
func (a *Animation) settle(err error) {
	if a.settled {
		return
	}
	a.settled = true
	a.err = err
	close(a.done)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
