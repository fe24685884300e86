package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			CellSize: 2,
		},
		Timing: TimingConfig{
			TicksPerSecond: 8,
			FrameRate:      60,
			MaxFrameMs:     0,
		},
		Food: FoodConfig{
			ScanThreshold: 0.5,
		},
		Input: InputConfig{
			SwipeDistance: 30,
			SwipeTimeMs:   1000,
			Keys: map[string][]string{
				"up":      {"up", "w"},
				"down":    {"down", "s"},
				"left":    {"left", "a"},
				"right":   {"right", "d"},
				"pause":   {" ", "space"},
				"restart": {"enter"},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
