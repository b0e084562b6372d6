package main

import (
	"os"

	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with the keyboard.

The window shell needs cgo and a display, so it is only included when the
binary is built with the "window" tag:

  go build -tags window ./cmd/flappy

Controls:
  Space/Up/W  - Flap (restart after game over)
  R           - Restart (after game over)
  P           - Pause
  Esc/Q       - Quit

Examples:
  flappy window
  flappy window --fps 120 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShell(cmd, "window", os.Stderr, 0, 0)
	},
}
