// Package cmd provides the CLI commands for tariffs.
package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tariff-compare/adapters/storage"
	"tariff-compare/core/engine"
	"tariff-compare/core/output"
	"tariff-compare/core/types"
	"tariff-compare/core/ui"
	"tariff-compare/internal/config"
	"tariff-compare/internal/errors"
	"tariff-compare/internal/logging"
)

// Version is the CLI version, overridable at link time
var Version = "0.1.0"

type rootOptions struct {
	cfgFile string
	verbose bool
}

// env is everything a command needs, built once per invocation
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	engine *engine.Engine
	closer io.Closer
	out    io.Writer
	ui     *ui.Writer
	errUI  *ui.Writer
}

func (e *env) Close() {
	if e.closer != nil {
		e.closer.Close()
	}
	logging.Sync(e.logger)
}

// outputOptions returns rendering options from config
func (e *env) outputOptions() output.Options {
	return output.Options{Currency: e.cfg.Output.Currency, NoColor: e.cfg.Output.NoColor}
}

// format resolves the --format flag, falling back to the configured default
func (e *env) format(flag string) (output.Format, error) {
	if flag == "" {
		flag = e.cfg.Output.DefaultFormat
	}
	return output.ParseFormat(flag)
}

// reportStore warns on stderr when custom vendors could not be read or written
func (e *env) reportStore(action string, status types.StoreStatus) {
	if status.OK() {
		return
	}
	e.errUI.Warning("custom vendors could not be %s (%s); continuing without them", action, status.Outcome)
	if status.Err != nil {
		e.errUI.Debug("%v", status.Err)
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tariffs",
		Short: "Compare electricity tariffs",
		Long: `tariffs ranks electricity vendor plans by total cost.

A plan is a fixed monthly fee plus a per-kWh rate. Plans are priced at a
consumption quantity and ordered cheapest first. Built-in vendors can be
extended with your own, which are kept between sessions.

Examples:
  tariffs rank --quantity 350
  tariffs ladder --format markdown
  tariffs import vendors.csv --save
  tariffs vendors add --vendor "Kvarn" --plan "Fast" --fee 9.5 --rate 0.27`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.tariff-compare/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newRankCmd(opts),
		newLadderCmd(opts),
		newImportCmd(opts),
		newVendorsCmd(opts),
		newDefaultsCmd(opts),
		newVersionCmd(),
		newConfigCmd(opts),
	)
	return rootCmd
}

// Execute runs the CLI and prints a failing command's error to stderr
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		reportError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// reportError prints err followed by its context, e.g. "... (field=fee, value=ten)"
func reportError(w io.Writer, err error) {
	out := ui.NewWriter(w, os.Getenv("NO_COLOR") != "")
	e, ok := errors.As(err)
	if !ok || len(e.Context) == 0 {
		out.Error("%v", err)
		return
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, e.Context[k])
	}
	out.Error("%v (%s)", err, strings.Join(pairs, ", "))
}

// loadConfig loads and adjusts configuration for this invocation
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// setup builds the environment: config, logger, store and engine
func setup(cmd *cobra.Command, opts *rootOptions) (*env, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	kv, closer, err := storage.Open(cfg.Store)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened",
		zap.String("backend", cfg.Store.Backend),
		zap.String("path", cfg.Store.Path),
	)

	store := storage.NewVendorStore(kv, logger)

	verbosity := 1
	if opts.verbose {
		verbosity = 2
	}
	errUI := ui.NewWriter(cmd.ErrOrStderr(), cfg.Output.NoColor)
	errUI.SetVerbosity(verbosity)

	return &env{
		cfg:    cfg,
		logger: logger,
		engine: engine.New(store, engine.WithLogger(logger)),
		closer: closer,
		out:    cmd.OutOrStdout(),
		ui:     ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor),
		errUI:  errUI,
	}, nil
}

// runWithEnv adapts a command body that needs an env into a cobra RunE
func runWithEnv(opts *rootOptions, fn func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, opts)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(cmd, args, e)
	}
}
