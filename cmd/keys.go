package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjnav/zjnav/internal/command"
	"github.com/zjnav/zjnav/internal/config"
	"github.com/zjnav/zjnav/internal/keybind"
)

var keysCmd = &cobra.Command{
	Use:   "keys <name> <direction>",
	Short: "Show the keystrokes injected for a command",
	Long: `Print (Go-escaped) the byte sequence the router would inject into a
modal editor for the given command and direction under the loaded
modifier configuration, e.g.:

  zjnav keys move_focus left
  zjnav keys resize down`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		c, ok := command.Parse(args[0], args[1])
		if !ok {
			return fmt.Errorf("unrecognized command %q %q (names: move_focus, move_focus_or_tab, resize; directions: left, right, up, down)", args[0], args[1])
		}

		keys := keybind.Keystrokes(c, cfg.MoveModifier, cfg.ResizeModifier)
		fmt.Printf("%q\n", keys)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
