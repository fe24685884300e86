// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all tunables of the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Food    FoodConfig    `yaml:"food"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	CellSize int `yaml:"cell_size"`
	Width    int `yaml:"width"`  // Layout units, 0 = fit terminal
	Height   int `yaml:"height"` // Layout units, 0 = fit terminal
}

// TimingConfig defines simulation and display rates.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
	FrameRate      int `yaml:"frame_rate"`
	MaxFrameMs     int `yaml:"max_frame_ms"`
}

// FoodConfig defines food placement behaviour.
type FoodConfig struct {
	ScanThreshold float64 `yaml:"scan_threshold"`
}

// InputConfig defines swipe gesture thresholds and key bindings.
type InputConfig struct {
	SwipeDistance int                 `yaml:"swipe_distance"`
	SwipeTimeMs   int                 `yaml:"swipe_time_ms"`
	Keys          map[string][]string `yaml:"keys"` // Action name -> keys
}

// LoggingConfig defines where logs go.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Upper bounds for the rates. Beyond them a tick or a frame is shorter than
// the host can schedule.
const (
	MaxTicksPerSecond = 1000
	MaxFrameRate      = 1000
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Board.CellSize >= core.RowUnits, "board.cell_size must be at least %d, got %d", core.RowUnits, c.Board.CellSize)
	check(c.Board.Width >= 0, "board.width must not be negative, got %d", c.Board.Width)
	check(c.Board.Height >= 0, "board.height must not be negative, got %d", c.Board.Height)
	check(c.Timing.TicksPerSecond > 0 && c.Timing.TicksPerSecond <= MaxTicksPerSecond,
		"timing.ticks_per_second must be within [1, %d], got %d", MaxTicksPerSecond, c.Timing.TicksPerSecond)
	check(c.Timing.FrameRate > 0 && c.Timing.FrameRate <= MaxFrameRate,
		"timing.frame_rate must be within [1, %d], got %d", MaxFrameRate, c.Timing.FrameRate)
	check(c.Timing.MaxFrameMs >= 0, "timing.max_frame_ms must not be negative, got %d", c.Timing.MaxFrameMs)
	check(c.Food.ScanThreshold >= 0 && c.Food.ScanThreshold <= 1,
		"food.scan_threshold must be within [0, 1], got %g", c.Food.ScanThreshold)
	check(c.Input.SwipeDistance > 0, "input.swipe_distance must be positive, got %d", c.Input.SwipeDistance)
	check(c.Input.SwipeTimeMs > 0, "input.swipe_time_ms must be positive, got %d", c.Input.SwipeTimeMs)

	return errors.Join(errs...)
}

// FrameInterval returns the time between host frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Timing.FrameRate, 1))
}

// SwipeTime returns the swipe time limit.
func (c Config) SwipeTime() time.Duration {
	return time.Duration(c.Input.SwipeTimeMs) * time.Millisecond
}

// Runtime builds the game runtime config for a viewport of viewW x viewH
// layout units. Fixed board dimensions in the config take precedence but are
// shrunk to the viewport, so the whole board stays visible.
func (c Config) Runtime(viewW, viewH int, seed int64) core.RuntimeConfig {
	if c.Board.Width > 0 {
		viewW = min(c.Board.Width, viewW)
	}
	if c.Board.Height > 0 {
		viewH = min(c.Board.Height, viewH)
	}
	return core.RuntimeConfig{
		ViewW:             viewW,
		ViewH:             viewH,
		CellSize:          c.Board.CellSize,
		TickRate:          c.Timing.TicksPerSecond,
		MaxFrame:          time.Duration(c.Timing.MaxFrameMs) * time.Millisecond,
		FoodScanThreshold: c.Food.ScanThreshold,
		Seed:              seed,
	}
}
