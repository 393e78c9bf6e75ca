package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTimerStartAndTick tests the basic countdown lifecycle.
func TestTimerStartAndTick(t *testing.T) {
	t.Parallel()

	timer := NewTimer()

	assert.False(t, timer.IsRunning())
	assert.True(t, timer.CanResend())

	timer.Start(3)

	assert.True(t, timer.IsRunning())
	assert.False(t, timer.CanResend())
	assert.Equal(t, 3, timer.SecondsRemaining())

	timer.Tick()
	assert.Equal(t, 2, timer.SecondsRemaining())
	assert.True(t, timer.IsRunning())

	timer.Tick()
	timer.Tick()

	assert.Equal(t, 0, timer.SecondsRemaining())
	assert.False(t, timer.IsRunning())
	assert.True(t, timer.CanResend())
}

// TestTimerFullCooldown tests that the default cooldown expires after
// exactly that many ticks and not a tick sooner.
func TestTimerFullCooldown(t *testing.T) {
	t.Parallel()

	timer := NewTimer()
	timer.Start(DefaultCooldownSeconds)

	for i := 0; i < DefaultCooldownSeconds-1; i++ {
		timer.Tick()
		assert.False(t, timer.CanResend())
	}

	assert.Equal(t, 1, timer.SecondsRemaining())

	timer.Tick()

	assert.True(t, timer.CanResend())
	assert.Equal(t, 0, timer.SecondsRemaining())
}

// TestTimerTickWhenStopped tests that ticks on a stopped timer are ignored.
func TestTimerTickWhenStopped(t *testing.T) {
	t.Parallel()

	timer := NewTimer()

	timer.Tick()
	timer.Tick()

	assert.Equal(t, 0, timer.SecondsRemaining())
	assert.False(t, timer.IsRunning())
}

// TestTimerRestartOverwrites tests that starting a running timer replaces
// the countdown instead of stacking a second one.
func TestTimerRestartOverwrites(t *testing.T) {
	t.Parallel()

	timer := NewTimer()
	timer.Start(10)
	timer.Tick()
	timer.Tick()

	timer.Start(5)

	assert.Equal(t, 5, timer.SecondsRemaining())
	assert.True(t, timer.IsRunning())
}

// TestTimerNonPositiveStart tests that non-positive durations leave the timer stopped.
func TestTimerNonPositiveStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		durationSeconds int
	}{
		{name: "zero", durationSeconds: 0},
		{name: "negative", durationSeconds: -5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			timer := NewTimer()
			timer.Start(tt.durationSeconds)

			assert.False(t, timer.IsRunning())
			assert.True(t, timer.CanResend())
			assert.Equal(t, 0, timer.SecondsRemaining())
		})
	}
}

// TestTimerReset tests that reset stops and zeroes a running countdown.
func TestTimerReset(t *testing.T) {
	t.Parallel()

	timer := NewTimer()
	timer.Start(30)
	timer.Tick()

	timer.Reset()

	assert.False(t, timer.IsRunning())
	assert.Equal(t, 0, timer.SecondsRemaining())
	assert.True(t, timer.CanResend())
}
