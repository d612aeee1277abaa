package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location and contents, or reset it to defaults.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  withApp(runConfigPath),
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides and
normalization have been applied.`,
	Args: cobra.NoArgs,
	RunE: withApp(runConfigShow),
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with default settings",
	Args:  cobra.NoArgs,
	RunE:  withApp(runConfigReset),
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configResetCmd)
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigPath(cmd *cobra.Command, _ []string, app *cli.App) error {
	fmt.Fprintln(cmd.OutOrStdout(), app.ConfigManager.GetConfigFile())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string, app *cli.App) error {
	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigReset(cmd *cobra.Command, _ []string, app *cli.App) error {
	path := app.ConfigManager.GetConfigFile()

	if !configYes {
		ok, err := confirm(app.Theme, fmt.Sprintf("Overwrite %s with defaults?", path))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.Database.Path = app.Config.Database.Path
	if err := app.ConfigManager.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Config reset: %s\n",
		app.Theme.SuccessStyle.Render(styles.IconCheck), app.Theme.Highlight.Render(path))
	return nil
}
