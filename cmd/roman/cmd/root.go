// Package cmd holds the cobra command tree of the roman CLI.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roman/internal/config"
	"github.com/katalvlaran/roman/internal/logging"
	"github.com/katalvlaran/roman/internal/render"
	"github.com/katalvlaran/roman/numeral"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	cfgFile  string
	format   string
	notation string
	max      int
	verbose  bool
}

// app is the state built once per invocation by the root pre-run hook.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	enc    *numeral.Encoder
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "roman",
		Short: "Convert integers into Roman numerals",
		Long: `roman converts integers in [1, 3999] into classical Roman numerals.

Configuration is read from an optional TOML file (--config), then from
ROMAN_* environment variables, then from flags:

  format      ROMAN_FORMAT      text | json | yaml
  notation    ROMAN_NOTATION    subtractive | additive
  max_value   ROMAN_MAX_VALUE   largest accepted value (<= 3999)
  log_level   ROMAN_LOG_LEVEL   debug | info | warn | error
  log_format  ROMAN_LOG_FORMAT  text | json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.cfgFile, "config", "", "TOML config file")
	pf.StringVarP(&flags.format, "format", "f", render.FormatText, "output format: text, json or yaml")
	pf.StringVarP(&flags.notation, "notation", "n", numeral.Subtractive.String(), "notation: subtractive or additive")
	pf.IntVar(&flags.max, "max", numeral.MaxValue, "largest accepted value")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newConvertCmd(a), newTableCmd(a))

	return root
}

// Execute runs the CLI with os.Args and reports a failure on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "roman: %v\n", err)
		return err
	}

	return nil
}

// setup resolves configuration, logger and encoder. Flags win over the
// environment, which wins over the config file.
func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = flags.format
	}
	if fs.Changed("notation") {
		cfg.Notation = flags.notation
	}
	if fs.Changed("max") {
		cfg.MaxValue = flags.max
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)   // validated
	format, _ := logging.ParseFormat(cfg.LogFormat) // validated
	logger, _ := logging.WithRunID(logging.New(cmd.ErrOrStderr(), level, format))

	opts, err := cfg.EncoderOptions()
	if err != nil {
		return err
	}
	enc, err := numeral.NewEncoder(opts...)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.enc = cfg, logger, enc
	a.logger.Debug("encoder ready",
		"command", cmd.Name(),
		"notation", cfg.Notation,
		"max_value", cfg.MaxValue,
		"format", cfg.Format,
	)

	return nil
}

// emit renders items to the command's stdout.
func (a *app) emit(cmd *cobra.Command, items []numeral.Conversion, showValues bool) error {
	r := render.Renderer{Format: a.cfg.Format, ShowValues: showValues}

	return r.Write(cmd.OutOrStdout(), items)
}
