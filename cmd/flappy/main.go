// flappy is a Flappy Bird-style arcade game for the terminal and the desktop.
//
// Usage:
//
//	flappy [play]            - Play in the terminal
//	flappy window            - Play in a desktop window (built with -tags window)
//	flappy shells            - List available presentation shells
//	flappy sim               - Run a headless round with the autopilot
//	flappy config dump       - Print the default configuration
//	flappy config check <p>  - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - keep the bird in the air",
	Long: `Flappy is a Flappy Bird-style arcade game. Tap to flap, fly through
the gaps between the pipes, and don't touch the ground.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  shells   - List available presentation shells
  sim      - Headless run with a simple autopilot
  config   - Inspect and validate game configuration

Examples:
  flappy
  flappy play --seed 42
  flappy window --fps 120
  flappy sim --seed 7 --duration 60s
  flappy config dump > ~/.arcade/configs/flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(shellsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
