package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/bestiary/internal/core/observability/log"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Register the catalog prototypes and print the spawned monsters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			a, err := opts.app()
			if err != nil {
				_, _ = fmt.Fprintf(out, "Monster Manager Error: %v\n", err)
				return ErrReported
			}
			defer a.Logger.Sync()

			spawned, err := a.Catalog.Spawn(a.Registry)
			if err != nil {
				a.Logger.Warn("demo aborted", log.Error(err))
				_, _ = fmt.Fprintf(out, "Monster Manager Error: %v\n", err)
				return ErrReported
			}
			return render(out, spawned)
		},
	}
}
