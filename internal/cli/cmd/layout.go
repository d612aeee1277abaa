package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	layoutJSON         bool
	layoutExportFormat string
	layoutOutput       string
	layoutImportFormat string
	layoutImportName   string
	layoutYes          bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage saved layouts",
	Long: `List, inspect and edit saved dock layouts.

The active layout is the one the dock restores on start. Other setups are
stored under their own names and can be applied to replace it.`,
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Long: `List every saved layout with its panel and block counts.

The active layout is marked with ●.`,
	Args: cobra.NoArgs,
	RunE: withApp(runLayoutList),
}

var layoutShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a layout's tree, groups and catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withApp(runLayoutShow),
}

var layoutSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the active layout under a name",
	Long: `Copy the active layout to a named setup. When nothing is saved yet the
default layout is stored instead.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runLayoutSave),
}

var layoutApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Make a named layout the active one",
	Long: `Apply a named setup to the dock and store the result as the active
layout. References to unknown blocks or panels are skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runLayoutApply),
}

var layoutExportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export a layout as JSON or TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withApp(runLayoutExport),
}

var layoutImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a layout from a JSON or TOML file",
	Long: `Import a layout document. The format is taken from --format, or from
the file extension when the flag is omitted. Use - to read stdin.

The document is applied to the configured catalog before it is stored, so
references that cannot be resolved are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runLayoutImport),
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the active layout with the default one",
	Args:  cobra.NoArgs,
	RunE:  withApp(runLayoutReset),
}

var layoutDeleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Delete saved layouts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  withApp(runLayoutDelete),
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd, layoutShowCmd, layoutSaveCmd, layoutApplyCmd,
		layoutExportCmd, layoutImportCmd, layoutResetCmd, layoutDeleteCmd)

	layoutListCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON")
	layoutExportCmd.Flags().StringVarP(&layoutExportFormat, "format", "f", "json", "output format (json, toml)")
	layoutExportCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "write to file instead of stdout")
	layoutImportCmd.Flags().StringVarP(&layoutImportFormat, "format", "f", "", "input format (json, toml)")
	layoutImportCmd.Flags().StringVarP(&layoutImportName, "name", "n", "", "store under this name instead of the active layout")
	layoutResetCmd.Flags().BoolVarP(&layoutYes, "yes", "y", false, "skip confirmation prompt")
}

type layoutListItem struct {
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	Panels  int    `json:"panels"`
	Blocks  int    `json:"blocks"`
	SavedAt string `json:"saved_at,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runLayoutList(cmd *cobra.Command, _ []string, app *cli.App) error {

	infos, err := app.LayoutUC.List(app.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	if layoutJSON {
		return outputLayoutsJSON(cmd.OutOrStdout(), infos)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderList(infos))
	return nil
}

func outputLayoutsJSON(w io.Writer, infos []usecase.SetupInfo) error {
	items := make([]layoutListItem, 0, len(infos))
	for _, info := range infos {
		item := layoutListItem{Name: info.Name, Active: info.Active}
		if info.Err != nil {
			item.Error = info.Err.Error()
		} else {
			item.Panels = len(info.Doc.Panels)
			item.Blocks = len(info.Doc.Menu)
			if !info.Doc.SavedAt.IsZero() {
				item.SavedAt = info.Doc.SavedAt.Format(time.RFC3339)
			}
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// setupName returns the first argument, or the active setup name.
func setupName(app *cli.App, args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return app.Config.Storage.ActiveSetup
}

func runLayoutShow(cmd *cobra.Command, args []string, app *cli.App) error {

	name := setupName(app, args)
	doc, err := app.LayoutUC.LoadNamed(app.Ctx(), name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderDocument(name, doc))
	return nil
}

func runLayoutSave(cmd *cobra.Command, args []string, app *cli.App) error {
	ctx := app.Ctx()

	if _, err := app.RestoreActive(ctx); err != nil {
		return fmt.Errorf("restore layout: %w", err)
	}
	doc, err := app.LayoutUC.SaveAs(ctx, app.Dock, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderSaved(args[0], doc))
	return nil
}

func runLayoutApply(cmd *cobra.Command, args []string, app *cli.App) error {
	ctx := app.Ctx()

	doc, err := app.LayoutUC.LoadNamed(ctx, args[0])
	if err != nil {
		return err
	}
	out, err := applyAndStore(app, doc, app.Config.Storage.ActiveSetup)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderApplied(args[0], out))
	return nil
}

// applyAndStore applies doc to the app dock and stores the normalized
// capture under name.
func applyAndStore(app *cli.App, doc *entity.LayoutDocument, name string) (*usecase.ApplyOutput, error) {
	ctx := app.Ctx()

	out, err := app.RestoreUC.Apply(ctx, usecase.ApplyInput{
		Dock:             app.Dock,
		Document:         doc,
		DefaultMinWidth:  app.Config.Dock.DefaultMinWidth,
		DefaultMinHeight: app.Config.Dock.DefaultMinHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("apply layout: %w", err)
	}
	if _, err := app.LayoutUC.SaveAs(ctx, app.Dock, name); err != nil {
		return nil, err
	}
	return out, nil
}

func runLayoutExport(cmd *cobra.Command, args []string, app *cli.App) error {

	format, err := usecase.ParseDocumentFormat(layoutExportFormat)
	if err != nil {
		return err
	}
	doc, err := app.LayoutUC.LoadNamed(app.Ctx(), setupName(app, args))
	if err != nil {
		return err
	}
	data, err := app.LayoutUC.Export(doc, format)
	if err != nil {
		return err
	}

	if layoutOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(layoutOutput, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", layoutOutput, err)
	}
	return nil
}

func runLayoutImport(cmd *cobra.Command, args []string, app *cli.App) error {

	path := args[0]
	formatName := layoutImportFormat
	if formatName == "" {
		formatName = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	format, err := usecase.ParseDocumentFormat(formatName)
	if err != nil {
		return err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := app.LayoutUC.Import(data, format)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	name := layoutImportName
	if name == "" {
		name = app.Config.Storage.ActiveSetup
	}
	out, err := applyAndStore(app, doc, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderApplied(name, out))
	return nil
}

func runLayoutReset(cmd *cobra.Command, _ []string, app *cli.App) error {
	ctx := app.Ctx()

	if !layoutYes {
		ok, err := confirm(app.Theme, "Replace the active layout with the default one?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := app.RestoreUC.BuildDefault(ctx, app.Dock, app.DefaultBlocks()); err != nil {
		return err
	}
	doc, err := app.LayoutUC.Save(ctx, app.Dock)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderSaved(app.Config.Storage.ActiveSetup, doc))
	return nil
}

func runLayoutDelete(cmd *cobra.Command, args []string, app *cli.App) error {

	if err := app.LayoutUC.Delete(app.Ctx(), args...); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(app.Theme).RenderDeleted(args))
	return nil
}

// confirm runs a yes/no dialog and reports whether the user accepted.
func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(styles.NewConfirm(theme, message)).Run()
	if err != nil {
		return false, err
	}
	c, ok := final.(styles.ConfirmModel)
	return ok && c.Done() && c.Result(), nil
}
