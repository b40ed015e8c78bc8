// Package frame paces a game loop with a fixed logic tick rate and a
// configurable render rate.
//
// Logic always ticks at TickRate (120 Hz). Renders run at the rate the
// Timer was created with, typically the display refresh rate. The two
// schedules drift independently: when the loop falls behind, every
// missed logic tick is reported so simulation state can catch up, while
// missed renders collapse into a single one because only the newest
// frame is worth drawing.
//
// Use Run for a ready-made loop, or drive a Timer by hand:
//
//	timer := frame.NewTimer(60)
//	for {
//		time.Sleep(time.Until(timer.SleepUntil()))
//		action := timer.Tick()
//		for range action.Ticks {
//			step()
//		}
//		if action.Render {
//			draw()
//		}
//	}
package frame

import (
	"context"
	"time"
)

// TickRate is the fixed logic tick rate in ticks per second.
const TickRate = 120

// TickPeriod is the duration of one logic tick.
const TickPeriod = time.Second / TickRate

// DefaultRenderRate is the render rate used when NewTimer is given a
// rate below 1.
const DefaultRenderRate = 60

// Action reports what one Tick call decided.
type Action struct {
	// Render reports whether a frame should be drawn now. Missed
	// render periods collapse into a single render.
	Render bool

	// Ticks is the number of logic ticks that came due since the last
	// call. Every missed tick is reported so simulation can catch up.
	Ticks uint32

	// Elapsed is the wall time since the previous Tick call.
	Elapsed time.Duration

	// Sleep is the deadline to sleep until before calling Tick again.
	Sleep time.Time

	// Now is the instant the action was computed.
	Now time.Time
}

// Timer schedules fixed-rate logic ticks and renders. It tracks the
// next deadline of each schedule and, on every Tick call, reports how
// many tick periods and whether a render period came due.
//
// A Timer is not safe for concurrent use.
type Timer struct {
	renderRate   int
	renderPeriod time.Duration

	start      time.Time
	now        time.Time
	elapsed    time.Duration
	nextTick   time.Time
	nextRender time.Time

	ticks   uint32
	renders uint32
}

// NewTimer creates a timer that renders at renderRate frames per
// second. Rates below 1 fall back to DefaultRenderRate. Logic always
// ticks at TickRate.
func NewTimer(renderRate int) *Timer {
	if renderRate < 1 {
		renderRate = DefaultRenderRate
	}
	now := time.Now()
	renderPeriod := time.Second / time.Duration(renderRate)
	return &Timer{
		renderRate:   renderRate,
		renderPeriod: renderPeriod,
		start:        now,
		now:          now,
		nextTick:     now.Add(TickPeriod),
		nextRender:   now.Add(renderPeriod),
	}
}

// Tick advances the timer to the current instant and reports the work
// that came due. Call it once per loop iteration, after sleeping until
// the previous action's Sleep deadline.
func (t *Timer) Tick() Action {
	now := time.Now()
	elapsed := now.Sub(t.now)
	t.elapsed += elapsed
	t.now = now

	render, ticks := t.catchUp(now)
	sleep := t.SleepUntil()
	t.ticks += ticks
	if render {
		t.renders++
	}

	return Action{
		Render:  render,
		Ticks:   ticks,
		Elapsed: elapsed,
		Sleep:   sleep,
		Now:     now,
	}
}

// catchUp advances both deadlines past now, counting missed periods.
func (t *Timer) catchUp(now time.Time) (render bool, ticks uint32) {
	for t.nextRender.Before(now) {
		render = true
		t.nextRender = t.nextRender.Add(t.renderPeriod)
	}
	for t.nextTick.Before(now) {
		ticks++
		t.nextTick = t.nextTick.Add(TickPeriod)
	}
	return render, ticks
}

// SleepUntil returns the next deadline, tick or render, whichever
// comes first.
func (t *Timer) SleepUntil() time.Time {
	if t.nextTick.Before(t.nextRender) {
		return t.nextTick
	}
	return t.nextRender
}

// Start returns when the timer was created.
func (t *Timer) Start() time.Time { return t.start }

// RenderRate returns the configured render rate in frames per second.
func (t *Timer) RenderRate() int { return t.renderRate }

// Ticks returns the total logic ticks reported so far.
func (t *Timer) Ticks() uint32 { return t.ticks }

// Renders returns the total renders reported so far.
func (t *Timer) Renders() uint32 { return t.renders }

// Elapsed returns the wall time accumulated across Tick calls.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// TickDrift returns the difference between the ticks reported so far
// and the count wall time implies. Negative values mean the loop is
// running behind.
func (t *Timer) TickDrift() int {
	est := int(time.Since(t.start) / TickPeriod)
	return int(t.ticks) - est
}

// RenderDrift is TickDrift for the render schedule.
func (t *Timer) RenderDrift() int {
	est := int(time.Since(t.start) / t.renderPeriod)
	return int(t.renders) - est
}

// Run drives a tick/render loop until ctx is canceled or onTick
// returns an error. onTick is called when at least one logic tick came
// due; onRender when a render period came due, after onTick. Either
// callback may be nil.
//
// Run returns ctx.Err() on cancellation, or the first error from
// onTick.
func Run(ctx context.Context, renderRate int, onTick func(Action) error, onRender func(Action)) error {
	timer := NewTimer(renderRate)
	wake := time.NewTimer(0)
	<-wake.C
	defer wake.Stop()

	sleep := timer.SleepUntil()
	for {
		d := time.Until(sleep)
		if d < 0 {
			d = 0
		}
		wake.Reset(d)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wake.C:
		}

		action := timer.Tick()
		if action.Ticks != 0 && onTick != nil {
			if err := onTick(action); err != nil {
				return err
			}
		}
		if action.Render && onRender != nil {
			onRender(action)
		}
		sleep = action.Sleep
	}
}
