package headerlint

import (
	"fmt"
	"os"

	"github.com/redactyl/headerlint/internal/config"
	"github.com/redactyl/headerlint/internal/engine"
	"github.com/redactyl/headerlint/internal/report"
	"github.com/spf13/cobra"
)

func newConfigCmd(o *options) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	var output string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .headerlint.yml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
			ex := report.DefaultExceptionsPath
			format := "text"
			fc := config.FileConfig{
				Exceptions:       &ex,
				Format:           &format,
				Extensions:       engine.DefaultExtensions,
				CopyrightMarkers: engine.DefaultRules().CopyrightMarkers,
			}
			if err := config.Save(output, fc); err != nil {
				return err
			}
			fmt.Fprintln(o.stdout, "Wrote", output)
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", ".headerlint.yml", "output file path")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}
