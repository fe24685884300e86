package core

import "time"

// RuntimeConfig contains everything a game needs at construction time.
// The platform fills it from the loaded configuration and the terminal size.
type RuntimeConfig struct {
	ViewW    int // Viewport width in layout units
	ViewH    int // Viewport height in layout units
	CellSize int // Cell edge length in layout units

	TickRate int           // Simulation ticks per second
	MaxFrame time.Duration // Largest elapsed time credited to a single frame (0 = no cap)

	// FoodScanThreshold is the snake occupancy ratio above which food placement
	// enumerates free cells instead of rejection sampling.
	FoodScanThreshold float64

	Seed int64 // RNG seed for food placement
}

// Grid returns the board derived from the viewport and cell size.
func (c RuntimeConfig) Grid() Grid {
	return NewGrid(c.ViewW, c.ViewH, c.CellSize)
}
