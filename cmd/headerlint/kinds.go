package headerlint

import (
	"fmt"

	"github.com/redactyl/headerlint/internal/types"
	"github.com/spf13/cobra"
)

func newKindsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List violation kinds and their messages",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			for _, k := range types.Kinds {
				fmt.Fprintf(o.stdout, "%s\t%s\n", k, k.Message())
			}
		},
	}
}
