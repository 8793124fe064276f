package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/bestiary/internal/core/catalog"
	"github.com/zeusync/bestiary/internal/core/prototype"
)

func newSpawnCmd(opts *options) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:     "spawn <prototype>",
		Short:   "Create one monster from a registered prototype",
		Example: `  bestiary spawn MonsterB --set special_ability="Ice Beam" --set speed=8`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseOverrides(sets)
			if err != nil {
				return err
			}
			a, err := opts.app()
			if err != nil {
				return err
			}
			defer a.Logger.Sync()

			m, err := a.Registry.Create(args[0], overrides)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), []catalog.Spawned{{Label: args[0], Monster: m}})
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "attribute override as key=value (repeatable)")
	return cmd
}

// parseOverrides turns key=value pairs into overrides. Values stay raw
// strings; each attribute setter converts them to its own type.
func parseOverrides(pairs []string) (prototype.Overrides, error) {
	overrides := make(prototype.Overrides, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q, want key=value", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}
