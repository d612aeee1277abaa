package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) {
	theme := styles.NewTheme()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, theme.Title.Render("dockyard "+buildInfo.Version))
	for _, f := range buildInfo.Fields() {
		fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render(fmt.Sprintf("%-10s", f.Label)), f.Value)
	}
}
