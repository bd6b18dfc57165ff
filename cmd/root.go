// The root command for the CLI.
// It loads the config file, sets up logging, and maps failures to exit codes.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configCommand "github.com/redjax/weather-cli/internal/commands/configCommand"
	weatherCommand "github.com/redjax/weather-cli/internal/commands/weatherCommand"
	"github.com/redjax/weather-cli/internal/config"
	"github.com/redjax/weather-cli/internal/exitcode"
	"github.com/redjax/weather-cli/internal/utils/logging"
	"github.com/redjax/weather-cli/internal/version"
)

// NewRootCommand builds the CLI. Each call returns an independent command tree.
func NewRootCommand() *cobra.Command {
	var (
		// A path to a file to load configuration from
		cfgFile string
		// For enabling debug logging with --debug/-D
		debug bool
	)

	rootCmd := &cobra.Command{
		Use:   "weather-cli",
		Short: "Query weather forecasts from a weather service",
		Long: `Command-line client for a weather forecast service.

Configure a provider once with "weather-cli configure <provider>", then ask
for forecasts with "weather-cli get <address> [date]".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Init(debug)

			store, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return exitcode.Config(err)
			}
			log.Debugw("configuration loaded", "path", store.Path())

			cmd.SetContext(config.WithStore(cmd.Context(), store))
			return nil
		},
		Args: exitcode.UsageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default %s)", config.DefaultConfigFile))
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().String(config.ServerFlag, "", fmt.Sprintf("weather server address (default %s)", config.DefaultServerAddress))
	rootCmd.PersistentFlags().Duration("timeout", 0, "timeout for each request to the server (0 = none)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return exitcode.Usage(err)
	})

	rootCmd.AddCommand(weatherCommand.NewCommands()...)
	rootCmd.AddCommand(configCommand.NewConfigCommand())
	rootCmd.AddCommand(version.NewVersionCommand())
	rootCmd.AddCommand(version.NewPackageInfoCommand())

	return rootCmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	logging.Logger.Sync()

	return exitcode.FromError(err)
}
