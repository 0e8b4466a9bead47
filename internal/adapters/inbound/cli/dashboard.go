package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
)

func newDashboardCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show revenue stats and recent invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, _, closeLog, err := newServices(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()

			if err := services.Dashboard.Ping(ctx); err != nil {
				return fmt.Errorf("api unreachable: %w", err)
			}

			stats, err := services.Dashboard.Stats(ctx)
			if err != nil {
				return fmt.Errorf("loading stats: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, stats)
			}

			recent, err := services.Dashboard.RecentInvoices(ctx)
			if err != nil {
				return fmt.Errorf("loading recent invoices: %w", err)
			}
			settings, err := services.Settings.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStats(stats, settings.Currency))
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderRecentInvoices(recent, settings.Currency))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output stats as JSON")

	return cmd
}
