package weatherservice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LineChooser lists the candidates with zero-based indexes and reads one index
// per line. Invalid lines print a retry prompt and the list is shown again.
type LineChooser struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds the number of lines read. Zero means unlimited.
	MaxAttempts int
	Log         *zap.SugaredLogger
}

// NewLineChooser reads selections from in and writes the prompt to out.
func NewLineChooser(in io.Reader, out io.Writer) *LineChooser {
	return &LineChooser{
		in:  bufio.NewReader(in),
		out: out,
		Log: zap.NewNop().Sugar(),
	}
}

// Choose blocks until a valid index is read. The candidates are not modified.
func (c *LineChooser) Choose(ctx context.Context, candidates []Location) (int, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		for i, loc := range candidates {
			fmt.Fprintf(c.out, "%d. %s\n", i, loc)
		}

		idx, err := c.readIndex(len(candidates))
		if err == nil {
			return idx, nil
		}
		if errors.Is(err, io.EOF) {
			return -1, ErrInputClosed
		}

		c.Log.Debugw("rejected location index", "attempt", attempt, "error", err)

		if c.MaxAttempts > 0 && attempt >= c.MaxAttempts {
			return -1, fmt.Errorf("%w: gave up after %d attempts", ErrTooManyAttempts, attempt)
		}

		fmt.Fprintln(c.out, "Failed to read location index, try again: ")
	}
}

// readIndex reads one line and parses it as an index below n. A final line
// without a trailing newline is still accepted.
func (c *LineChooser) readIndex(n int) (int, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return -1, err
	}

	text := strings.TrimSpace(line)
	// A single explicit sign is allowed: "+1" selects 1.
	idx, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: %q is not a number", errInvalidSelection, text)
	}
	if idx >= uint64(n) {
		return -1, fmt.Errorf("%w: %d is out of range", errInvalidSelection, idx)
	}

	return int(idx), nil
}
