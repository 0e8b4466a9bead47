package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/config"
)

func newExportCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export <invoice>",
		Short: "Download an invoice PDF",
		Long:  "Download an invoice's PDF by id or invoice number and save it as invoice_<number>.pdf.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.DownloadDir = dir
			}
			services, _, closeLog, err := buildServices(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()

			invoice, err := services.Invoices.Resolve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("resolving invoice %q: %w", args[0], err)
			}
			path, err := services.Invoices.ExportPDF(ctx, invoice.ID)
			if err != nil {
				return fmt.Errorf("exporting invoice: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to save into (defaults to the configured download dir)")

	return cmd
}
