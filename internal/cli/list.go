package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered prototypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.app()
			if err != nil {
				return err
			}
			defer a.Logger.Sync()

			out := cmd.OutOrStdout()
			for _, name := range a.Registry.Names() {
				kind, _ := a.Registry.KindOf(name)
				if _, err = fmt.Fprintf(out, "%s (%s)\n", name, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
