// Package loop converts a variable-rate frame clock into whole fixed-length
// simulation ticks. The host calls Tick once per displayed frame with a
// monotonic timestamp; the leftover time is carried to the next frame.
package loop

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRate is returned for a tick rate that does not yield a positive
// step: zero, negative, or faster than one tick per nanosecond.
var ErrInvalidRate = errors.New("loop: invalid tick rate")

// Clock is a fixed-timestep accumulator.
//
// The accumulator always stays in [0, step). A reset clears the
// reference timestamp, so the next Advance only records "now" and credits no
// time: a pause or a restart never replays a backlog of ticks.
type Clock struct {
	step     time.Duration
	maxFrame time.Duration

	acc    time.Duration
	last   time.Duration
	primed bool
}

// NewClock creates a clock producing ticksPerSecond steps per second of
// elapsed time. maxFrame caps the time credited by a single frame; zero
// disables the cap.
func NewClock(ticksPerSecond int, maxFrame time.Duration) (*Clock, error) {
	if ticksPerSecond <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, ticksPerSecond)
	}
	step := time.Second / time.Duration(ticksPerSecond)
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d ticks per second rounds the step to zero", ErrInvalidRate, ticksPerSecond)
	}
	return &Clock{
		step:     step,
		maxFrame: max(maxFrame, 0),
	}, nil
}

// Step returns the fixed simulation step.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Accumulated returns the residual time not yet consumed by a tick.
func (c *Clock) Accumulated() time.Duration {
	return c.acc
}

// Reset zeroes the accumulator and clears the reference timestamp.
func (c *Clock) Reset() {
	c.acc = 0
	c.primed = false
}

// Advance credits the time elapsed since the previous call and returns how
// many whole steps are now due. Time going backwards credits nothing.
func (c *Clock) Advance(now time.Duration) int {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0
	}

	dt := max(now-c.last, 0)
	c.last = now
	if c.maxFrame > 0 && dt > c.maxFrame {
		dt = c.maxFrame
	}

	c.acc += dt
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	return n
}
