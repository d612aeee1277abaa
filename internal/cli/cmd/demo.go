package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

const demoCmdName = "demo"

var demoWatch bool

var demoCmd = &cobra.Command{
	Use:   demoCmdName,
	Short: "Open the interactive dock",
	Long: `Open the dock in the terminal with the configured blocks.

The active layout is restored on start and saved automatically as you
rearrange panels. Press 1-9 to open or close catalog blocks, s to save,
r to reset to the default layout and ? for all keys.

Logs are written to $XDG_STATE_HOME/dockyard/logs/dockyard.log.`,
	RunE: withApp(runDemo),
}

func init() {
	rootCmd.AddCommand(demoCmd)
	for _, c := range []*cobra.Command{rootCmd, demoCmd} {
		c.Flags().BoolVarP(&demoWatch, "watch", "w", true, "apply dock settings when the config file changes")
	}
}

func runDemo(_ *cobra.Command, _ []string, app *cli.App) error {
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	out, err := app.RestoreActive(ctx)
	if err != nil {
		return fmt.Errorf("restore layout: %w", err)
	}
	if out != nil {
		for _, s := range out.Skipped {
			log.Warn().Str("reason", s).Msg("skipped layout reference")
		}
	}

	demoCfg := model.DemoConfig{
		Engine:   app.NewEngine(),
		Layout:   app.LayoutUC,
		Restore:  app.RestoreUC,
		Defaults: app.DefaultBlocks(),
		Catalog:  app.CatalogBlocks(),
	}
	if autosave := app.NewAutosave(ctx); autosave != nil {
		demoCfg.Autosave = autosave
	}
	m := model.NewDemoModel(ctx, app.Theme, demoCfg)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if demoWatch {
		app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.SettingsMsg(cli.EngineSettings(cfg)))
		})
		if err := app.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dock: %w", err)
	}
	if err := m.Err(); err != nil {
		log.Debug().Err(err).Msg("dock closed after an error")
	}
	return nil
}
