package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/infra/config"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(
		newConfigShowCommand(container),
		newConfigInitCommand(),
	)

	return cmd
}

// newConfigInitCommand creates the config init command.
func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}
			path, err := config.WriteTemplate(cwd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

// newConfigShowCommand creates the config show command.
func newConfigShowCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration after merging defaults, the global
config file, the local config file, and environment overrides. The API
token is masked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := container()

			cfg := *c.Config
			if cfg.API.Token != "" {
				cfg.API.Token = "****"
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = cmd.OutOrStdout().Write(data)
			return nil
		},
	}
}
