// snake is a terminal snake game driven by a fixed-timestep simulation.
//
// Usage:
//
//	snake                - Play (same as "snake play")
//	snake play           - Play
//	snake config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Use a custom config file
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to a file (default: no logs)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake steers a growing snake around a bordered board, eating food
and avoiding the walls and its own body.

Available commands:
  play     - Start a game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --tps 12
  snake --seed 42 --log-file ~/.snake/snake.log --log-level debug
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides logging.file)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides logging.level)")

	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (0 = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
