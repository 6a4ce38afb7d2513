package player

import "time"

// Fade is a time-based linear interpolation of a scalar value with an
// optional completion callback. The callback fires on natural completion
// only — Cancel and restarts via Start never invoke it.
type Fade struct {
	value  float64
	from   float64
	to     float64
	start  time.Time
	dur    time.Duration
	active bool
	onDone func()
}

// Start begins a fade from the current value to the given target.
// Any fade already in flight is superseded and its callback is dropped.
func (f *Fade) Start(to float64, d time.Duration, now time.Time, onDone func()) {
	f.from = f.value
	f.to = to
	f.start = now
	f.dur = d
	f.active = true
	f.onDone = onDone
}

// Cancel stops an in-flight fade, keeping the current value.
func (f *Fade) Cancel() {
	f.active = false
	f.onDone = nil
}

// Set jumps to a value immediately, cancelling any in-flight fade.
func (f *Fade) Set(v float64) {
	f.Cancel()
	f.value = v
}

// Step advances the fade to the given time. When the endpoint is reached
// the completion callback fires exactly once.
func (f *Fade) Step(now time.Time) {
	if !f.active {
		return
	}
	elapsed := now.Sub(f.start)
	if f.dur <= 0 || elapsed >= f.dur {
		f.value = f.to
		f.active = false
		done := f.onDone
		f.onDone = nil
		if done != nil {
			done()
		}
		return
	}
	t := float64(elapsed) / float64(f.dur)
	f.value = f.from + (f.to-f.from)*t
}

// Value returns the current interpolated value.
func (f *Fade) Value() float64 {
	return f.value
}

// Active reports whether a fade is in flight.
func (f *Fade) Active() bool {
	return f.active
}
