package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

func newInvoicesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "invoices [query]",
		Short: "List invoices",
		Long:  "List invoices, optionally narrowed by a case-insensitive number/customer/status filter.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, _, closeLog, err := newServices(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()

			invoices, err := services.Invoices.List(ctx)
			if err != nil {
				return fmt.Errorf("listing invoices: %w", err)
			}
			if len(args) > 0 {
				invoices = domain.FilterInvoices(invoices, args[0])
			}

			if jsonOutput {
				return writeJSON(cmd, invoices)
			}

			settings, err := services.Settings.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(tui.RenderInvoiceTable(invoices, settings.Currency, -1), "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
