package version

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewVersionCommand adds a 'version' subcommand, which prints the CLI's version.
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := Current()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				info.Program, info.Version, info.Commit, info.Date)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")

	return cmd
}

// NewPackageInfoCommand adds a subcommand 'info' that describes the build.
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show build and client information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := Current()

			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendRows([]table.Row{
				{"Program", info.Program},
				{"Version", info.Version},
				{"Commit", info.Commit},
				{"Release date", info.Date},
				{"Repository", info.RepoUrl},
				{"Go", info.GoVersion},
				{"User-Agent", UserAgent()},
			})

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}
