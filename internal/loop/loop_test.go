package loop

import (
	"errors"
	"testing"
	"time"
)

const ms = time.Millisecond

// fakeSim counts updates and can end itself after a number of steps.
type fakeSim struct {
	status  Status
	updates int
	endAt   int // 0 = never
}

func (f *fakeSim) Update() {
	f.updates++
	if f.endAt > 0 && f.updates >= f.endAt {
		f.status = StatusOver
	}
}

func (f *fakeSim) Status() Status { return f.status }

func mustClock(t *testing.T, tps int, maxFrame time.Duration) *Clock {
	t.Helper()
	c, err := NewClock(tps, maxFrame)
	if err != nil {
		t.Fatalf("NewClock(%d) failed: %v", tps, err)
	}
	return c
}

func TestNewClockRejectsBadRate(t *testing.T) {
	for _, tps := range []int{0, -8, 1_000_000_001, 2_000_000_000} {
		if _, err := NewClock(tps, 0); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("NewClock(%d) error = %v, expected ErrInvalidRate", tps, err)
		}
	}
}

func TestNewClockFastestRate(t *testing.T) {
	c := mustClock(t, 1_000_000_000, 0)
	if c.Step() != time.Nanosecond {
		t.Fatalf("Step() = %v, expected 1ns", c.Step())
	}
	c.Advance(0)
	if n := c.Advance(5); n != 5 {
		t.Errorf("Advance(5ns) = %d, expected 5", n)
	}
}

func TestClockStep(t *testing.T) {
	c := mustClock(t, 8, 0)
	if c.Step() != 125*ms {
		t.Errorf("Step() = %v, expected 125ms", c.Step())
	}
}

func TestClockAdvance(t *testing.T) {
	c := mustClock(t, 8, 0)

	// First frame only records the reference
	if n := c.Advance(1000 * ms); n != 0 {
		t.Fatalf("first Advance() = %d, expected 0", n)
	}

	tests := []struct {
		now      time.Duration
		expected int
		acc      time.Duration
	}{
		{1016 * ms, 0, 16 * ms},
		{1130 * ms, 1, 5 * ms},
		{1400 * ms, 2, 25 * ms},
		{1400 * ms, 0, 25 * ms},
		{1500 * ms, 1, 0},
	}

	for _, tc := range tests {
		if n := c.Advance(tc.now); n != tc.expected {
			t.Errorf("Advance(%v) = %d, expected %d", tc.now, n, tc.expected)
		}
		if c.Accumulated() != tc.acc {
			t.Errorf("after Advance(%v) accumulator = %v, expected %v", tc.now, c.Accumulated(), tc.acc)
		}
		if c.Accumulated() < 0 || c.Accumulated() >= c.Step() {
			t.Errorf("accumulator %v outside [0, %v)", c.Accumulated(), c.Step())
		}
	}
}

func TestClockClampsBackwardsTime(t *testing.T) {
	c := mustClock(t, 8, 0)
	c.Advance(1000 * ms)
	c.Advance(1100 * ms) // 100ms banked

	if n := c.Advance(500 * ms); n != 0 {
		t.Errorf("Advance() with time going backwards = %d, expected 0", n)
	}
	if c.Accumulated() != 100*ms {
		t.Errorf("accumulator = %v, expected 100ms to survive a backwards frame", c.Accumulated())
	}

	// The new, earlier timestamp is the reference from now on
	if n := c.Advance(525 * ms); n != 1 {
		t.Errorf("Advance() after rebasing on earlier time = %d, expected 1", n)
	}
}

func TestClockCapsLongFrames(t *testing.T) {
	c := mustClock(t, 8, 250*ms)
	c.Advance(0)

	if n := c.Advance(10 * time.Second); n != 2 {
		t.Errorf("Advance() after 10s stall = %d, expected 2 (capped at 250ms)", n)
	}
}

func TestClockReset(t *testing.T) {
	c := mustClock(t, 8, 0)
	c.Advance(0)
	c.Advance(100 * ms)

	c.Reset()
	if c.Accumulated() != 0 {
		t.Errorf("Reset should zero the accumulator, got %v", c.Accumulated())
	}
	if n := c.Advance(9 * time.Second); n != 0 {
		t.Errorf("Advance() after Reset = %d, expected 0", n)
	}
}

func TestTickStates(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		frame  Frame
	}{
		{"idle does nothing", StatusIdle, Frame{}},
		{"over does nothing", StatusOver, Frame{}},
		{"paused renders only", StatusPaused, Frame{Render: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := &fakeSim{status: tc.status}
			c := mustClock(t, 8, 0)
			Tick(sim, c, 0)
			got := Tick(sim, c, time.Second)
			if got != tc.frame {
				t.Errorf("Tick() = %+v, expected %+v", got, tc.frame)
			}
			if sim.updates != 0 {
				t.Errorf("Update called %d times, expected 0", sim.updates)
			}
		})
	}
}

func TestTickRunsDueSteps(t *testing.T) {
	sim := &fakeSim{status: StatusRunning}
	c := mustClock(t, 8, 0)

	if f := Tick(sim, c, 0); f.Ticks != 0 || !f.Reschedule || !f.Render {
		t.Errorf("first Tick() = %+v, expected render+reschedule with no ticks", f)
	}

	f := Tick(sim, c, 400*ms)
	if f.Ticks != 3 || sim.updates != 3 {
		t.Errorf("Tick() ran %d (updates %d), expected 3", f.Ticks, sim.updates)
	}
	if !f.Reschedule {
		t.Error("running simulation should be rescheduled")
	}
}

func TestTickStopsWhenSimulationEnds(t *testing.T) {
	sim := &fakeSim{status: StatusRunning, endAt: 2}
	c := mustClock(t, 8, 0)
	Tick(sim, c, 0)

	f := Tick(sim, c, time.Second)
	if f.Ticks != 2 {
		t.Errorf("Tick() ran %d steps, expected 2 before the simulation ended", f.Ticks)
	}
	if f.Reschedule {
		t.Error("ended simulation should not be rescheduled")
	}
	if !f.Render {
		t.Error("the frame that ends the simulation should still render")
	}
}

func TestTickFrameRateIndependence(t *testing.T) {
	// The same wall time yields the same tick count at any display rate.
	for _, fps := range []int{30, 60, 144} {
		sim := &fakeSim{status: StatusRunning}
		c := mustClock(t, 8, 0)
		frame := time.Second / time.Duration(fps)

		total := 0
		for i := 0; i <= fps*2; i++ {
			total += Tick(sim, c, time.Duration(i)*frame).Ticks
		}
		if total < 15 || total > 16 {
			t.Errorf("at %d fps ran %d ticks in 2s, expected 15-16", fps, total)
		}
	}
}
