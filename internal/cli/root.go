package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagenav CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup for
// testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "pagenav",
		Short:         "Page series calculator and catalog pager",
		Long:          "pagenav: compute pagination windows and page through product catalogs",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
				config.SetGlobalConfig(config.NewWithOverlay(cmd.Context(), overlay))
			}

			result := setupLogging(cmd, lookupEnv)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the global configuration")
	cmd.AddCommand(
		NewSeriesCmd(), newCatalogCmd(), NewBrowseCmd(),
		NewSweepCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Series for page 6 of 100 items, 8 per page
  pagenav series --total 100 --page-size 8 --page 6

  # Same series as pagy-style HTML links
  pagenav series --total 100 --page 6 --url "/products?sort=newest" --output html

  # Second page of a seeded catalog, cheapest first
  pagenav catalog list --seed 100 --sort price_low_high --page 2

  # Browse a catalog file interactively
  pagenav browse --file products.yaml

  # Check every page of a large listing
  pagenav sweep --total 100000 --page-size 25 --workers 8

  # Initialize configuration
  pagenav config init`

// newCatalogCmd creates the catalog command group.
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Product catalog commands"}
	cmd.AddCommand(NewCatalogListCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
