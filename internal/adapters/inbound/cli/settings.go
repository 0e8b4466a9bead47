package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

func newSettingsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the company settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, _, closeLog, err := newServices(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			settings, err := services.Settings.Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, settings)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSettings(settings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
