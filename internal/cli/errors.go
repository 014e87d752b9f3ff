package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/pablofueros/lis-optimization/sequence"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// GenerateCommand is the data-generation step suggested when a sequence
// file is missing; %d receives N.
const GenerateCommand = "uv run python/generator.py %d"

// UsageError reports a malformed command line. No computation is attempted.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Reason
}

// report writes err to stderr in the operator-facing format and returns the
// exit status. cmd may be nil when the command could not be built.
func report(cmd *cobra.Command, err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var (
		usage    *UsageError
		notFound *sequence.NotFoundError
	)
	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Error: %s\n", usage.Reason)
		if cmd != nil {
			fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
		}
	case errors.As(err, &notFound):
		if errors.Is(notFound.Err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: file '%s' does not exist.\n", notFound.Path)
		} else {
			fmt.Fprintf(stderr, "Error: file '%s' cannot be read: %v\n", notFound.Path, notFound.Err)
		}
		fmt.Fprintf(stderr, "Run '"+GenerateCommand+"' to generate the data.\n", notFound.N)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return ExitFailure
}
