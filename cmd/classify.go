package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjnav/zjnav/internal/classify"
	"github.com/zjnav/zjnav/internal/config"
	"github.com/zjnav/zjnav/internal/host"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the focused pane's occupant",
	Long: `Run one list-clients probe and print the classified occupant as JSON.

"occupant" is null when the focused pane is not terminal-backed, has no
resolvable command, or the probe output could not be parsed. "editor"
reports whether the router would inject keystrokes for this occupant.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		z, err := host.Detect()
		if err != nil {
			return err
		}

		out, err := z.ListClientsOnce(cmd.Context())
		if err != nil {
			return err
		}

		var result struct {
			Occupant *string `json:"occupant"`
			Editor   bool    `json:"editor"`
		}
		if occupant, ok := classify.Occupant(string(out)); ok {
			result.Occupant = &occupant
			result.Editor = classify.IsEditor(occupant, cfg.Editors)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
