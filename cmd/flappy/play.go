package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Register the terminal shell
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. The world is scaled to fit the
terminal, so any size from 20x6 up works.

Controls:
  Space/Up/W  - Flap (restart after game over)
  R           - Restart (after game over)
  P           - Pause
  Q/Ctrl+C    - Quit

Logs are discarded unless --log-file is set, since the game owns the
terminal.

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return runShell(cmd, "tui", io.Discard, width, height)
}
