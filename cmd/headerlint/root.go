package headerlint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// exitError carries a non-zero exit status that is not a failure of the
// tool itself (new findings in enforce mode).
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type options struct {
	exceptions string
	format     string
	sort       bool
	threads    int
	include    string
	exclude    string
	exts       []string
	logLevel   string
	noColor    bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "headerlint [flags] FILE...",
		Short: "Check copyright headers, imports and module docs",
		Long: "headerlint checks that every file starts with a copyright block, followed only by\n" +
			"one-per-line imports, followed by a module docstring or code. Violations listed in\n" +
			"the exception file are grandfathered.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, o, args)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&o.exceptions, "exceptions", "", "exception list path (default "+defaultExceptionsHint+")")
	pf.IntVar(&o.threads, "threads", 0, "lint files concurrently with this many workers (0/1 = sequential)")
	pf.StringVar(&o.include, "include", "", "comma-separated include globs for directory arguments")
	pf.StringVar(&o.exclude, "exclude", "", "comma-separated exclude globs for directory arguments")
	pf.StringSliceVar(&o.exts, "ext", nil, "file extensions picked up from directory arguments (default .lean)")
	pf.StringVar(&o.logLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
	root.Flags().StringVar(&o.format, "format", "", "output format: text|json|sarif|table (default text)")
	root.Flags().BoolVar(&o.sort, "sort", false, "sort findings by path and line instead of input order")
	root.Flags().BoolVar(&o.noColor, "no-color", false, "disable colorized summary")

	root.AddCommand(
		newExceptionsCmd(o),
		newKindsCmd(o),
		newConfigCmd(o),
		newCompletionCmd(),
	)
	return root
}

// Run executes the CLI with args and returns the process exit status:
// 0 on success, 1 for new findings in enforce mode, 2 on fatal errors.
func Run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return 0
}

// Execute runs the headerlint CLI. It should be called by the main package.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
