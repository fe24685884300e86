package loop

import "time"

// Status is the scheduler-visible mode of a simulation.
type Status int

const (
	StatusIdle    Status = iota // Not started
	StatusRunning               // Ticks advance
	StatusPaused                // Rendering only
	StatusOver                  // Terminal; only a restart leaves it
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Simulation is advanced by Tick.
type Simulation interface {
	// Update advances the simulation by exactly one fixed step.
	Update()

	// Status reports the current mode.
	Status() Status
}

// Frame is the outcome of one host frame.
type Frame struct {
	Ticks      int  // Simulation steps run this frame
	Render     bool // Whether the host should repaint
	Reschedule bool // Whether the host should request another frame
}

// Tick runs one frame of the fixed-timestep state machine.
//
// Idle or over simulations do nothing and are not rescheduled. A paused
// simulation is rendered but neither advanced nor rescheduled; resumption is
// driven by whoever unpauses it. A running simulation consumes the elapsed time
// in whole steps and asks for another frame while it keeps running.
func Tick(sim Simulation, c *Clock, now time.Duration) Frame {
	switch sim.Status() {
	case StatusRunning:
	case StatusPaused:
		return Frame{Render: true}
	default:
		return Frame{}
	}

	due := c.Advance(now)
	ran := 0
	for ; ran < due; ran++ {
		if sim.Status() != StatusRunning {
			break
		}
		sim.Update()
	}

	return Frame{
		Ticks:      ran,
		Render:     true,
		Reschedule: sim.Status() == StatusRunning,
	}
}
