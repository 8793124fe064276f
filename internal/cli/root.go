// Package cli wires the bestiary commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zeusync/bestiary/internal/config"
	"github.com/zeusync/bestiary/internal/injector"
)

// ErrReported means the command already printed its failure; the caller
// should only set the exit status.
var ErrReported = errors.New("error already reported")

var version = "dev"

type options struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCmd builds the command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           "bestiary",
		Short:         "Clone and customize registered monster prototypes",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("catalog", "", "prototype catalog file (default: built-in)")
	_ = opts.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = opts.v.BindPFlag("catalog", root.PersistentFlags().Lookup("catalog"))

	root.AddCommand(
		newDemoCmd(opts),
		newSpawnCmd(opts),
		newListCmd(opts),
	)
	return root
}

// app loads config and builds the registry with the catalog prototypes
// already registered.
func (o *options) app() (*injector.App, error) {
	cfg, err := config.Load(o.v, o.cfgFile)
	if err != nil {
		return nil, err
	}
	a, err := injector.InitializeApp(cfg)
	if err != nil {
		return nil, err
	}
	if err = a.Catalog.Build(a.Registry); err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return a, nil
}
