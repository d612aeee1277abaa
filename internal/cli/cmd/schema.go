package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <layout|config>",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of layout documents or of the config file.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"layout", "config"},
	RunE:      withApp(runSchema),
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string, app *cli.App) error {

	var (
		data []byte
		err  error
	)
	switch args[0] {
	case "layout":
		data, err = app.LayoutUC.Schema()
	case "config":
		data, err = config.GenerateSchema()
	default:
		return fmt.Errorf("unknown schema %q (want layout or config)", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
