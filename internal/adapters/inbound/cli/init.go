package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/facturo/facturo/internal/adapters/outbound/config"
)

const configFileName = ".facturo.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .facturo.yaml configuration file",
		Long:  "Create a .facturo.yaml with the default settings written out, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .facturo.yaml")

	return cmd
}

func generateConfig() string {
	cfg := config.Default()

	return fmt.Sprintf(`# Facturo configuration
# Environment variables (FACTURO_API_URL, ...) override these values.

api_url: %s
request_timeout: %s
download_dir: %s
log_format: %s
log_level: %s

# Write logs to a file instead of stderr. The interactive shell only
# logs when this is set.
# log_file: facturo.log
`, cfg.APIURL, cfg.RequestTimeout, cfg.DownloadDir, cfg.LogFormat, cfg.LogLevel)
}
