package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "zjnav",
	Short: "Vim-aware focus and resize routing for Zellij",
	Long: `zjnav routes directional navigation and resize requests inside Zellij.

A trigger (typically bound to a Zellij keybinding via "zjnav send") is
queued while zjnav probes which program occupies the focused pane. If the
occupant is a modal editor (vim, nvim), the equivalent editor keystrokes
are injected so the editor moves between its own splits; otherwise the
native Zellij action runs.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
