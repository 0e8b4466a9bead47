package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/inbound/shell"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive shell",
		Long:  "Open the full-screen terminal application with the dashboard, customer and invoice views.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}
}

// runShell logs to the configured file or nowhere: stdout belongs to
// the terminal application while it runs.
func runShell() error {
	services, log, closeLog, err := newServices(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return shell.Run(services, log)
}
