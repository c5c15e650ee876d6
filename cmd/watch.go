package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/zjnav/zjnav/internal/config"
	"github.com/zjnav/zjnav/internal/host"
	"github.com/zjnav/zjnav/internal/watch"
)

var flagWatchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live monitor of the focused pane's occupant",
	Long: `Open a small TUI that probes the focused pane on an interval and shows
the classified occupant, the routing mode the router would use, and the
configured editor keybindings. Read-only: never dispatches anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		z, err := host.Detect()
		if err != nil {
			return err
		}

		w := &watch.Watch{
			Probe:     z.ListClientsOnce,
			Editors:   cfg.Editors,
			MoveMod:   cfg.MoveModifier,
			ResizeMod: cfg.ResizeModifier,
			Interval:  flagWatchInterval,
		}
		return w.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&flagWatchInterval, "interval", time.Second, "probe interval")
	rootCmd.AddCommand(watchCmd)
}
