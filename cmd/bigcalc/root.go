package main

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/bigmath"
	"github.com/privacybydesign/bigmath/calculator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	calcName   string
	logLevel   string
	rounding   string

	math *bigmath.Math
	mode bigmath.RoundingMode
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "bigcalc",
		Short:        "Arbitrary-precision integer calculator",
		Long:         `bigcalc evaluates exact integer arithmetic of unbounded size using a selectable calculator backend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML configuration file")
	flags.StringVar(&a.calcName, "calculator", "", "calculator backend (default: best available)")
	flags.StringVar(&a.logLevel, "log-level", "warning", "log level (trace|debug|info|warning|error)")
	flags.StringVar(&a.rounding, "rounding", "unnecessary", "rounding mode used by div")

	root.AddCommand(a.binaryCommands()...)
	root.AddCommand(a.intArgCommands()...)
	root.AddCommand(a.sqrtCmd(), a.convertCmd(), a.calculatorsCmd())
	return root
}

// setup merges the configuration file into the flags that were not given explicitly, and
// builds the Math used by the subcommands.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if cfg.Calculator != "" && !flags.Changed("calculator") {
			a.calcName = cfg.Calculator
		}
		if cfg.LogLevel != "" && !flags.Changed("log-level") {
			a.logLevel = cfg.LogLevel
		}
		if cfg.Rounding != "" && !flags.Changed("rounding") {
			a.rounding = cfg.Rounding
		}
	}

	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	bigmath.Logger.SetLevel(level)

	if a.calcName == "" {
		a.math = bigmath.Default()
	} else {
		c, err := calculator.Get(a.calcName)
		if err != nil {
			return errors.WrapPrefix(err, a.calcName, 0)
		}
		a.math = bigmath.New(c)
	}
	bigmath.Logger.Debugf("bigcalc: using calculator %s", a.math.Calculator().Name())

	if a.mode, err = bigmath.ParseRoundingMode(a.rounding); err != nil {
		return errors.WrapPrefix(err, "rounding mode "+a.rounding, 0)
	}
	return nil
}

func (a *app) parse(s string) (*bigmath.Int, error) {
	x, err := a.math.Of(s)
	if err != nil {
		return nil, errors.WrapPrefix(err, s, 0)
	}
	return x, nil
}
