package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaussdecay/gaussdecay/internal/logging"
	"github.com/gaussdecay/gaussdecay/pkg/config"
	"github.com/gaussdecay/gaussdecay/pkg/decay"
	"github.com/gaussdecay/gaussdecay/pkg/surface"
)

// decayFlags are the flags shared by every command that builds a decay
// function. Flags override config values only when set explicitly.
type decayFlags struct {
	origin    float64
	scale     float64
	decay     float64
	offset    float64
	outputFmt string
	precision int
	unchecked bool
}

func (f *decayFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.origin, "origin", 0, "Value that receives the full score of 1.0")
	fl.Float64Var(&f.scale, "scale", 1, "Distance past the offset band at which the score equals --decay")
	fl.Float64Var(&f.decay, "decay", decay.DefaultDecay, "Score at one scale past the offset band, in (0, 1)")
	fl.Float64Var(&f.offset, "offset", decay.DefaultOffset, "Half-width of the band around origin that scores 1.0")
	fl.StringVar(&f.outputFmt, "output", "text", "Output format: text or json")
	fl.IntVar(&f.precision, "precision", 4, "Decimals printed for scores in text output")
	fl.BoolVar(&f.unchecked, "unchecked", false, "Skip parameter validation; degenerate parameters yield NaN or flat curves")
}

// session is everything a command needs after flags and config are merged.
type session struct {
	fn       decay.Gauss
	renderer surface.Renderer
	logger   *slog.Logger
}

func newSession(cmd *cobra.Command, f *decayFlags) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	f.apply(cmd, cfg)

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	_, noColor := os.LookupEnv("NO_COLOR")
	logger := logging.NewLogger(cfg.Log.Level, cmd.ErrOrStderr(), noColor)

	var fn decay.Gauss
	if f.unchecked {
		fn = cfg.Decay.UncheckedFunction()
		if err := fn.Validate(); err != nil {
			logger.Warn("evaluating with degenerate parameters", "err", err)
		}
	} else {
		fn, err = cfg.Decay.Function()
		if err != nil {
			return nil, err
		}
	}

	renderer, err := surface.ForFormat(cfg.Output.Format, cfg.Output.Precision)
	if err != nil {
		return nil, err
	}

	logger.Debug("decay function ready",
		"origin", fn.Origin(), "scale", fn.Scale(),
		"decay", fn.Decay(), "offset", fn.Offset())

	return &session{fn: fn, renderer: renderer, logger: logger}, nil
}

func (f *decayFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("origin") {
		cfg.Decay.Origin = f.origin
	}
	if fl.Changed("scale") {
		cfg.Decay.Scale = f.scale
	}
	if fl.Changed("decay") {
		cfg.Decay.Decay = f.decay
	}
	if fl.Changed("offset") {
		cfg.Decay.Offset = f.offset
	}
	if fl.Changed("output") {
		cfg.Output.Format = f.outputFmt
	}
	if fl.Changed("precision") {
		cfg.Output.Precision = f.precision
	}
}

// loadConfig reads --config if given, otherwise the nearest
// .gaussdecay/config.yaml above the working directory, otherwise defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = config.FindConfigFile(wd)
		if path == "" {
			return config.DefaultConfig(), nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return config.Load(path)
}
