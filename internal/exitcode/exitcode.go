package exitcode

import (
	"errors"

	"github.com/spf13/cobra"

	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
)

// Process exit codes. Scripts can tell the failure classes apart.
const (
	Success      = 0
	GeneralError = 1
	ConfigError  = 2
	RemoteError  = 3
	NotFound     = 4
	Precondition = 5
	UsageError   = 64
)

// ExitError attaches an exit code to an error.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// Usage marks err as a command-line usage mistake.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Err: err, Code: UsageError}
}

// Config marks err as a configuration failure.
func Config(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Err: err, Code: ConfigError}
}

// UsageArgs wraps a cobra argument validator so its errors map to UsageError.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Usage(validate(cmd, args))
	}
}

// FromError returns the exit code for err.
func FromError(err error) int {
	var exitErr *ExitError

	switch {
	case err == nil:
		return Success
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, weatherservice.ErrConfigPersist):
		return ConfigError
	case errors.Is(err, weatherservice.ErrRemoteCall):
		return RemoteError
	case errors.Is(err, weatherservice.ErrNoLocationFound),
		errors.Is(err, weatherservice.ErrAmbiguityOverflow):
		return NotFound
	case errors.Is(err, weatherservice.ErrProviderNotConfigured),
		errors.Is(err, weatherservice.ErrUnknownProvider):
		return Precondition
	default:
		return GeneralError
	}
}
