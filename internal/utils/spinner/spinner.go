package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// StartSpinner starts a spinner on stderr with the given message and returns a
// function that stops and clears it. Nothing is drawn when stderr is not a
// terminal, so piped output stays clean.
//
// Usage:
//
//	stop := spinner.StartSpinner("Fetching providers")
//	providers, err := client.ListProviders(ctx)
//	stop()
func StartSpinner(message string) func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
