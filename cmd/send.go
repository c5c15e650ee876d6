package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjnav/zjnav/internal/config"
	"github.com/zjnav/zjnav/internal/trigger"
)

var flagSendSocket string

var sendCmd = &cobra.Command{
	Use:   "send <name> [payload]",
	Short: "Send one trigger to the routing daemon",
	Long: `Send a trigger message to the router socket. Intended for Zellij
keybindings, e.g.:

  bind "Ctrl h" { Run "zjnav" "send" "move_focus" "left"; }
  bind "Alt left" { Run "zjnav" "send" "resize" "left"; }

Delivery is fire-and-forget: send succeeds even for names the router
will drop.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		socket := flagSendSocket
		if socket == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			socket = cfg.Socket
		}

		m := trigger.Message{Name: args[0]}
		if len(args) > 1 {
			m.Payload = args[1]
		}
		return trigger.Send(socket, m)
	},
}

func init() {
	sendCmd.Flags().StringVar(&flagSendSocket, "socket", "", "trigger socket path (default: config or runtime dir)")
	rootCmd.AddCommand(sendCmd)
}
