package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/config"
	"github.com/facturo/facturo/internal/adapters/outbound/download"
	"github.com/facturo/facturo/internal/adapters/outbound/rest"
	"github.com/facturo/facturo/internal/application"
	"github.com/facturo/facturo/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facturo",
		Short: "Invoice management from the terminal",
		Long:  "Facturo manages customers, invoices and company settings against a billing API, interactively or as one-shot commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newUICmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDashboardCmd())
	cmd.AddCommand(newCustomersCmd())
	cmd.AddCommand(newInvoicesCmd())
	cmd.AddCommand(newSettingsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newServices wires the full outbound stack from the resolved
// configuration. Headless commands pass os.Stderr as the log fallback;
// the interactive shell passes io.Discard because it owns the terminal.
func newServices(logFallback io.Writer) (*application.Services, *slog.Logger, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return buildServices(cfg, logFallback)
}

func buildServices(cfg config.Config, logFallback io.Writer) (*application.Services, *slog.Logger, func() error, error) {
	log, closeLog, err := logging.New(cfg, logFallback)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setting up logging: %w", err)
	}

	client := rest.NewClient(cfg.APIURL, cfg.RequestTimeout, log)
	services := application.NewServices(client, download.NewWriter(cfg.DownloadDir))
	return services, log, closeLog, nil
}
