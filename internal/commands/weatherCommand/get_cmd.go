package weathercommand

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/redjax/weather-cli/internal/exitcode"
	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
)

// DateLayout is MM.DD.YYYY, the date format the weather service expects.
const DateLayout = "01.02.2006"

func NewGetCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "get <address> [date]",
		Short: "Get the forecast for an address",
		Long: `Searches the server for the address and prints the forecast from the
configured provider. When several locations match, you are asked to pick one
by its number.

The date is MM.DD.YYYY and defaults to today.`,
		Args: exitcode.UsageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, opts)
			if err != nil {
				return err
			}
			return d.Run(cmd.Context(), forecastCommand(args, time.Now()))
		},
	}

	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Pick between matching locations with an interactive list")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "Give up after this many invalid location choices (0 = never)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Print the forecast as a table")

	return cmd
}

// forecastCommand builds the GetForecast command, defaulting the date to now's local day.
func forecastCommand(args []string, now time.Time) weatherservice.GetForecast {
	date := now.Format(DateLayout)
	if len(args) > 1 {
		date = args[1]
	}
	return weatherservice.GetForecast{AddressQuery: args[0], Date: date}
}
