package weatherservice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLocationFound       = errors.New("no location found")
	ErrAmbiguityOverflow     = errors.New("too many locations found")
	ErrUnknownProvider       = errors.New("unknown weather provider")
	ErrProviderNotConfigured = errors.New("no weather provider configured")
	ErrRemoteCall            = errors.New("remote call failed")
	ErrConfigPersist         = errors.New("failed to persist configuration")

	// ErrInputClosed is returned when the interactive input reaches EOF before
	// a valid index was read. No further input can arrive, so retrying would never end.
	ErrInputClosed = errors.New("input closed before a location was selected")
	// ErrSelectionAborted is returned when the user quits the location picker.
	ErrSelectionAborted = errors.New("location selection aborted")
	// ErrTooManyAttempts is returned when a chooser with an attempt limit runs out.
	ErrTooManyAttempts = errors.New("too many invalid selections")

	// errInvalidSelection marks a malformed or out-of-range index. It never
	// leaves the chooser; the prompt is shown again instead.
	errInvalidSelection = errors.New("invalid location index")
)

// UnknownProviderError reports a configure target that the service does not offer.
type UnknownProviderError struct {
	Provider  string
	Available []string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("invalid weather provider %q passed, list of available providers: [%s]",
		e.Provider, strings.Join(e.Available, ", "))
}

func (e *UnknownProviderError) Unwrap() error { return ErrUnknownProvider }

// RemoteCallError wraps a transport or service failure of a single operation.
// The cause's message is kept as is.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// Is lets callers match any remote failure with errors.Is(err, ErrRemoteCall).
func (e *RemoteCallError) Is(target error) bool { return target == ErrRemoteCall }
