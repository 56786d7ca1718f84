package components

// timerEpsilon absorbs float drift so n ticks of dt expire an n*dt timer on
// tick n.
const timerEpsilon = 1e-9

// Timer is a countdown in seconds. It never goes below zero.
type Timer struct {
	Remaining float64
}

// Set starts the timer. Negative durations clamp to zero.
func (t *Timer) Set(d float64) {
	if d < 0 {
		d = 0
	}
	t.Remaining = d
}

// Clear stops the timer without reporting an expiry.
func (t *Timer) Clear() {
	t.Remaining = 0
}

// Active reports whether time is left.
func (t Timer) Active() bool {
	return t.Remaining > 0
}

// Tick advances the timer by dt and reports true on the tick it reaches zero.
func (t *Timer) Tick(dt float64) bool {
	if t.Remaining <= 0 {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= timerEpsilon {
		t.Remaining = 0
		return true
	}
	return false
}
