package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var shellsCmd = &cobra.Command{
	Use:   "shells",
	Short: "List available presentation shells",
	Long:  `Shows the shells compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runShells,
}

func runShells(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	shells := registry.List()

	if len(shells) == 0 {
		fmt.Fprintln(out, "No shells available.")
		return
	}

	fmt.Fprintln(out, "Available shells:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range shells {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range shells {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}
}
