package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pablofueros/lis-optimization/lis"
	"github.com/pablofueros/lis-optimization/sequence"
)

// DataDirEnv overrides the default data directory.
const DataDirEnv = "LIS_DATA_DIR"

// options holds the parsed flags of one invocation.
type options struct {
	dataDir  string
	show     bool
	verify   bool
	logLevel string
}

// runner binds one strategy to its output streams.
type runner struct {
	alg    lis.Algorithm
	opts   options
	stdout io.Writer
	stderr io.Writer
}

// Main runs the strategy registered under name against os.Args and exits.
func Main(name string) {
	os.Exit(Run(name, os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the entry point for the strategy registered under name with
// the given arguments (program name excluded) and returns the exit status.
func Run(name string, args []string, stdout, stderr io.Writer) int {
	alg, err := lis.Lookup(name)
	if err != nil {
		return report(nil, err, stderr)
	}

	cmd := NewCommand(alg, stdout, stderr)
	cmd.SetArgs(args)

	return report(cmd, cmd.Execute(), stderr)
}

// NewCommand builds the cobra command for alg. Errors are returned from
// Execute unprinted; Run formats them.
func NewCommand(alg lis.Algorithm, stdout, stderr io.Writer) *cobra.Command {
	r := &runner{alg: alg, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "lis-" + alg.Name + " <N>",
		Short: fmt.Sprintf("Print the LIS length of sequence_<N>.json (%s, %s)", alg.Name, alg.Complexity),
		Long: `Loads the integer sequence stored in <data-dir>/sequence_<N>.json and
prints the length of one of its longest strictly increasing subsequences.
N may contain underscore digit separators, e.g. 10_000.`,
		Args:              exactlyOneSize,
		RunE:              r.run,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Reason: err.Error()}
	})

	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		dataDir = sequence.DefaultDir
	}

	flags := cmd.Flags()
	flags.StringVar(&r.opts.dataDir, "data-dir", dataDir, "directory holding sequence_<N>.json files (env "+DataDirEnv+")")
	flags.BoolVar(&r.opts.show, "show", alg.PrintsSubsequence, "also print the subsequence values")
	flags.BoolVar(&r.opts.verify, "verify", false, "check the result is an increasing subsequence of the input")
	flags.StringVar(&r.opts.logLevel, "log-level", DefaultLogLevel, "logrus level: trace, debug, info, warn, error")

	return cmd
}

// exactlyOneSize rejects any argument count other than one.
func exactlyOneSize(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return &UsageError{Reason: "missing size argument <N>"}
	default:
		return &UsageError{Reason: fmt.Sprintf("expected exactly one argument <N>, got %d", len(args))}
	}
}

// run loads the sequence, computes the subsequence and prints the result.
func (r *runner) run(_ *cobra.Command, args []string) error {
	log, err := newLogger(r.stderr, r.opts.logLevel)
	if err != nil {
		return err
	}

	n, err := sequence.ParseSize(args[0])
	if err != nil {
		return err
	}

	fields := logrus.Fields{"algorithm": r.alg.Name, "n": n}
	log.WithFields(fields).WithField("path", sequence.Path(r.opts.dataDir, n)).Debug("loading sequence")

	seq, err := sequence.Dir(r.opts.dataDir).Load(n)
	if err != nil {
		return err
	}

	best := r.alg.Func(seq)
	log.WithFields(fields).WithFields(logrus.Fields{
		"input_len": len(seq),
		"lis_len":   len(best),
	}).Debug("computed subsequence")

	if r.opts.verify {
		if err := lis.Verify(seq, best); err != nil {
			return fmt.Errorf("%s produced an invalid result: %w", r.alg.Name, err)
		}
		log.WithFields(fields).Debug("result verified")
	}

	fmt.Fprintf(r.stdout, "LIS length = %d\n", len(best))
	if r.opts.show {
		fmt.Fprintf(r.stdout, "LIS = %v\n", best)
	}

	return nil
}
