package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/tui"
	"github.com/facturo/facturo/internal/domain"
)

func newCustomersCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "customers [query]",
		Short: "List customers",
		Long:  "List customers, optionally narrowed by a case-insensitive name/email/company filter.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, _, closeLog, err := newServices(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			customers, err := services.Customers.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing customers: %w", err)
			}
			if len(args) > 0 {
				customers = domain.FilterCustomers(customers, args[0])
			}

			if jsonOutput {
				return writeJSON(cmd, customers)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(tui.RenderCustomerTable(customers, -1), "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
