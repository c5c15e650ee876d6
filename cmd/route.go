package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjnav/zjnav/internal/config"
	"github.com/zjnav/zjnav/internal/host"
	"github.com/zjnav/zjnav/internal/keybind"
	telem "github.com/zjnav/zjnav/internal/otel"
	"github.com/zjnav/zjnav/internal/router"
	"github.com/zjnav/zjnav/internal/trigger"
)

var (
	flagRouteSocket    string
	flagRouteMoveMod   string
	flagRouteResizeMod string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Run the routing daemon",
	Long: `Run the zjnav router: listen for triggers on the control socket and
dispatch each one after probing the focused pane's occupant.

Triggers are JSON datagrams {"name": ..., "payload": ...}; recognized
names are move_focus, move_focus_or_tab and resize, with payloads left,
right, up, down. Anything else is dropped silently.

Configuration is loaded from .zjnav.yaml or environment variables; the
--socket, --move-mod and --resize-mod flags override both.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoute()
	},
}

func init() {
	routeCmd.Flags().StringVar(&flagRouteSocket, "socket", "", "trigger socket path (default: config or runtime dir)")
	routeCmd.Flags().StringVar(&flagRouteMoveMod, "move-mod", "", "modifier for focus-move keystrokes: ctrl, alt")
	routeCmd.Flags().StringVar(&flagRouteResizeMod, "resize-mod", "", "modifier for resize keystrokes: ctrl, alt")
	rootCmd.AddCommand(routeCmd)
}

func runRoute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "config: loaded %s\n", cfg.ConfigFile)
	}

	// Wire build version into OTEL service metadata
	telem.Version = Version

	// Initialize OTEL (no-op if no endpoint configured)
	tel, err := telem.Init(ctx, telem.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
	}
	if tel != nil {
		defer tel.Shutdown(context.Background())
	}

	// Refuse to start without a reachable Zellij session.
	z, err := host.Detect()
	if err != nil {
		return err
	}

	collector := trigger.NewCollector(cfg.Socket)
	if err := collector.Start(ctx); err != nil {
		return fmt.Errorf("trigger collector: %w", err)
	}
	fmt.Fprintf(os.Stderr, "router: listening on %s (move=%s resize=%s)\n",
		collector.SocketPath(), cfg.MoveModifier, cfg.ResizeModifier)

	var metrics *telem.Metrics
	if tel != nil {
		metrics = tel.Metrics
	}

	r := router.New(z, router.Options{
		MoveMod:   cfg.MoveModifier,
		ResizeMod: cfg.ResizeModifier,
		Editors:   cfg.Editors,
		Metrics:   metrics,
	})

	return r.Run(ctx, collector.Messages())
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if flagRouteSocket != "" {
		cfg.Socket = flagRouteSocket
	}
	if flagRouteMoveMod != "" {
		cfg.MoveModifier, err = keybind.ParseMod(flagRouteMoveMod)
		if err != nil {
			return nil, fmt.Errorf("invalid --move-mod: %w", err)
		}
	}
	if flagRouteResizeMod != "" {
		cfg.ResizeModifier, err = keybind.ParseMod(flagRouteResizeMod)
		if err != nil {
			return nil, fmt.Errorf("invalid --resize-mod: %w", err)
		}
	}

	return cfg, nil
}
