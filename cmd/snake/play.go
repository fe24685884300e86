package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagTPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game sized to the terminal.

Controls:
  Arrows/WASD  - Turn
  Space        - Pause/continue
  Enter        - Restart
  Mouse drag   - Turn (swipe)
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --tps 12
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagTPS != 0 {
		cfg.Timing.TicksPerSecond = flagTPS
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	logger, closer, err := logging.Open(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting", "tps", cfg.Timing.TicksPerSecond, "fps", cfg.Timing.FrameRate,
		"seed", flagSeed, "width", width, "height", height)

	if err := tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
