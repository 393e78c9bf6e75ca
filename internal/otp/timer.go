// Package otp provides the resend countdown for one-time codes.
//
// The timer is a plain state resource: the caller drives the one-second
// cadence (a ticker on the verification screen) and the timer only tracks
// the remaining seconds. No tick schedule of its own means nothing to
// double-schedule and nothing to leak when the screen is abandoned.
package otp

// DefaultCooldownSeconds matches the verification screen's 60-second resend lock.
const DefaultCooldownSeconds = 60

// Timer is a single countdown governing resend eligibility.
// A code can be resent exactly when the timer is not running.
// The count follows observed ticks, not elapsed wall-clock time,
// so a suspended process shows a lagging countdown. Accepted.
type Timer struct {
	secondsRemaining int
	running          bool
}

// NewTimer creates a stopped, zeroed timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Start resets the countdown to the given number of seconds and begins it.
// Any countdown already running is overwritten: the caller's tick schedule
// keeps driving the single timer, so there is never more than one countdown.
// Non-positive durations leave the timer stopped.
func (t *Timer) Start(durationSeconds int) {
	if durationSeconds <= 0 {
		t.secondsRemaining = 0
		t.running = false

		return
	}

	t.secondsRemaining = durationSeconds
	t.running = true
}

// Tick consumes one second of the countdown. Reaching zero stops the timer.
// Ticks on a stopped timer are ignored.
func (t *Timer) Tick() {
	if !t.running {
		return
	}

	t.secondsRemaining--

	if t.secondsRemaining <= 0 {
		t.secondsRemaining = 0
		t.running = false
	}
}

// SecondsRemaining returns the seconds left on the countdown.
func (t *Timer) SecondsRemaining() int {
	return t.secondsRemaining
}

// IsRunning reports whether the countdown is active.
func (t *Timer) IsRunning() bool {
	return t.running
}

// CanResend reports whether a new code may be requested.
func (t *Timer) CanResend() bool {
	return !t.running
}

// Reset stops and zeroes the timer.
func (t *Timer) Reset() {
	t.secondsRemaining = 0
	t.running = false
}
