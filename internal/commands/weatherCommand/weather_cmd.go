package weathercommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/weather-cli/internal/config"
	"github.com/redjax/weather-cli/internal/exitcode"
	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
	"github.com/redjax/weather-cli/internal/services/weatherService/ui"
	"github.com/redjax/weather-cli/internal/utils/logging"
	"github.com/redjax/weather-cli/internal/version"
)

// NewCommands returns the weather workflows, to be attached to the root command.
func NewCommands() []*cobra.Command {
	return []*cobra.Command{
		NewListProvidersCommand(),
		NewConfigureCommand(),
		NewGetCommand(),
	}
}

type runOptions struct {
	tui         bool
	maxAttempts int
	table       bool
}

// newDispatcher wires the config store loaded by the root command to an HTTP
// client for the configured server.
func newDispatcher(cmd *cobra.Command, opts runOptions) (*weatherservice.Dispatcher, error) {
	store, err := config.FromContext(cmd.Context())
	if err != nil {
		return nil, exitcode.Config(err)
	}

	flags := cmd.Flags()
	timeout, _ := flags.GetDuration("timeout")
	noColor, _ := flags.GetBool("no-color")

	log := logging.Logger
	out := cmd.OutOrStdout()

	address := store.ServerAddress()
	log.Debugw("using weather server", "address", address, "config", store.Path())

	client := spinningClient{next: weatherservice.NewHTTPClient(address, weatherservice.ClientOptions{
		Timeout:   timeout,
		UserAgent: version.UserAgent(),
		Logger:    log,
	})}

	var chooser weatherservice.Chooser
	if opts.tui {
		chooser = &ui.Picker{}
	} else {
		lc := weatherservice.NewLineChooser(cmd.InOrStdin(), out)
		lc.MaxAttempts = opts.maxAttempts
		lc.Log = log
		chooser = lc
	}

	render := weatherservice.NewRenderer(out, noColor)
	render.Table = opts.table

	return &weatherservice.Dispatcher{
		Client: client,
		Config: store,
		Resolver: &weatherservice.Resolver{
			Client:  client,
			Chooser: chooser,
			Out:     out,
			Log:     log,
		},
		Render: render,
		Log:    log,
	}, nil
}
