package headerlint

import (
	"fmt"

	"github.com/redactyl/headerlint/internal/engine"
	"github.com/redactyl/headerlint/internal/report"
	"github.com/spf13/cobra"
)

func newExceptionsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exceptions",
		Short: "Manage the exception list",
	}

	var output string
	update := &cobra.Command{
		Use:   "update FILE...",
		Short: "Rewrite the exception list from a lint run over FILE...",
		Long: "Lints every FILE and grandfathers each (file, violation) pair found.\n" +
			"Existing entries are replaced, so pass the full file set. Paths containing\n" +
			"whitespace cannot be recorded and make the command fail.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(o, args)
			if err != nil {
				return err
			}
			defer func() { _ = s.log.Sync() }()
			if output == "" {
				output = s.exceptions
			}
			res, err := engine.Run(cmd.Context(), s.engine)
			if err != nil {
				return err
			}
			if err := report.SaveExceptions(output, res.Findings); err != nil {
				return fmt.Errorf("write exceptions: %w", err)
			}
			ex, err := report.LoadExceptions(output)
			if err != nil {
				return err
			}
			fmt.Fprintf(o.stdout, "Wrote %d exceptions to %s\n", ex.Len(), output)
			return nil
		},
	}
	update.Flags().StringVarP(&output, "output", "o", "", "file to write (default: the configured exception list)")

	cmd.AddCommand(update)
	return cmd
}
