package configcommand

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/redjax/weather-cli/internal/config"
	"github.com/redjax/weather-cli/internal/exitcode"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the CLI configuration",
		Long: `Show where the configuration lives and what it currently resolves to.

Use "weather-cli configure <provider>" to change the provider.`,
	}

	cmd.AddCommand(newPathCommand())
	cmd.AddCommand(newShowCommand())

	return cmd
}

func newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  exitcode.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.FromContext(cmd.Context())
			if err != nil {
				return exitcode.Config(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  exitcode.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.FromContext(cmd.Context())
			if err != nil {
				return exitcode.Config(err)
			}
			printConfig(cmd.OutOrStdout(), store.Path(), store.All())
			return nil
		},
	}
}

func printConfig(w io.Writer, path string, values map[string]string) {
	provider := values[config.ProviderNameKey]
	if provider == "" {
		provider = "(not configured)"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Value"})
	t.AppendRow(table.Row{"config_file", path})
	t.AppendRow(table.Row{config.ProviderNameKey, provider})
	t.AppendRow(table.Row{config.ServerAddressKey, values[config.ServerAddressKey]})

	fmt.Fprintln(w, t.Render())
}
