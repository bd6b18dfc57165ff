package weathercommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/weather-cli/internal/exitcode"
	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
)

func NewListProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list-providers",
		Aliases: []string{"get-providers"},
		Short:   "List the weather providers the server supports",
		Args:    exitcode.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, runOptions{})
			if err != nil {
				return err
			}
			return d.Run(cmd.Context(), weatherservice.ListProviders{})
		},
	}
}
