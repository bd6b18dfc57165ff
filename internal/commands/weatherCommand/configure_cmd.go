package weathercommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/weather-cli/internal/exitcode"
	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
)

func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure <provider>",
		Short: "Choose the weather provider used for forecasts",
		Long: `Validates the provider against the server's provider list and saves it
to the config file. Run "weather-cli list-providers" to see the choices.`,
		Args: exitcode.UsageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, runOptions{})
			if err != nil {
				return err
			}
			return d.Run(cmd.Context(), weatherservice.Configure{Provider: args[0]})
		},
	}
}
