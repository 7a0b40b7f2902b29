// Package cli implements the nilakantha command, which approximates pi
// with exact partial sums of the Nilakantha series.
package cli

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/fraction"
	"github.com/govalues/fraction/internal/series"
)

// EnvPrefix is the prefix of environment variables overriding flags,
// e.g. NILAKANTHA_TERMS=5.
const EnvPrefix = "NILAKANTHA"

const (
	defaultTerms     = 9
	defaultPrecision = 16
	stepPrecision    = 5
)

// New returns the root command.
// Flag values are resolved through viper, so each flag can also be set
// with an environment variable or a config file.
func New() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "nilakantha",
		Short: "Approximates pi using exact partial sums of the Nilakantha series.",
		Long: `Approximates pi using exact partial sums of the Nilakantha series:

  pi = 3 + 4/(2*3*4) - 4/(4*5*6) + 4/(6*7*8) - ...

Every partial sum is an exact fraction, so the only error of the
approximation is the truncation of the series.`,
		Example: `nilakantha --terms 9 --precision 16 --verbose`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
		SilenceUsage: true,
	}
	registerFlags(cmd.Flags())
	return cmd
}

func registerFlags(fs *pflag.FlagSet) {
	fs.Int("terms", defaultTerms, "number of series terms to add after the constant 3")
	fs.Int("precision", defaultPrecision, "number of digits after the decimal point")
	fs.BoolP("verbose", "v", false, "print every partial sum")
	fs.String("config", "", "config file name")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-fmt", "text", "log format: text, color, json or logfmt")
}

// loadConfig binds flags, environment variables and the optional config file.
// Explicitly set flags take precedence over the environment, which takes
// precedence over the config file.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", file, err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-fmt"), v.GetString("log-level"))
	if err != nil {
		return err
	}

	terms := v.GetInt("terms")
	prec := v.GetInt("precision")
	if prec < 0 {
		return fmt.Errorf("invalid precision %v: must not be negative", prec)
	}
	logger.Debug("computing series", "terms", terms, "precision", prec)

	var pi fraction.Fraction
	out := cmd.OutOrStdout()
	if v.GetBool("verbose") {
		steps, err := series.NilakanthaSteps(terms)
		if err != nil {
			return explain(err)
		}
		for _, s := range steps[1:] {
			fmt.Fprintf(out, "%v - %v\n", s.Sum, s.Sum.DecimalString(stepPrecision))
		}
		pi = steps[len(steps)-1].Sum
	} else {
		pi, err = series.Nilakantha(terms)
		if err != nil {
			return explain(err)
		}
	}

	fmt.Fprintf(out, "According to %v terms of the Nilakantha series, pi is approximately %v, or %v\n",
		terms, pi, pi.DecimalString(prec))

	logger.Info("computed pi",
		"terms", terms,
		"fraction", pi,
		"deviation", math.Abs(pi.Float64()-math.Pi),
	)
	return nil
}

// explain adds a hint to errors the user can fix by changing flags.
func explain(err error) error {
	switch {
	case errors.Is(err, fraction.ErrOverflow):
		return fmt.Errorf("%w (try fewer terms)", err)
	case errors.Is(err, series.ErrNegativeTerms):
		return fmt.Errorf("%w (terms must not be negative)", err)
	}
	return err
}
