package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/hsatom/internal/config"
)

var (
	configFile   string
	preset       string
	spec         string
	meshClass    string
	exchange     string
	tolerance    float64
	maxIter      int
	mixing       float64
	noTail       bool
	workers      int
	requireConv  bool
	verbose      bool
	frameRate    int
	plainLive    bool
	plotWhat     string
	plotN, plotL int
)

func addSolveFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&spec, "spec", "", `configuration, e.g. "[Ne] 3s1" (default ground state)`)
	cmd.Flags().StringVar(&meshClass, "mesh", d.Mesh, "mesh class: abridged, normal, double")
	cmd.Flags().StringVar(&exchange, "exchange", d.Exchange, "exchange: none, nonstatistical, statistical")
	cmd.Flags().Float64Var(&tolerance, "tol", d.Tolerance, "convergence tolerance on ΔV")
	cmd.Flags().IntVar(&maxIter, "max-iter", d.MaxIterations, "iteration cap")
	cmd.Flags().Float64Var(&mixing, "mixing", d.Mixing, "weight of the rebuilt potential")
	cmd.Flags().BoolVar(&noTail, "no-tail", false, "disable the Latter tail")
	cmd.Flags().IntVar(&workers, "workers", d.Workers, "concurrent orbital solves (0 = all cores)")
	cmd.Flags().BoolVar(&requireConv, "require-convergence", false, "fail when the iteration cap is reached")
}

// resolve builds the run configuration: preset, then config file, then any
// flag set on the command line.
func resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset, cfg.Element)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}

	f := cmd.Flags()
	if len(args) > 0 {
		cfg.Element = args[0]
	}
	if f.Changed("spec") {
		cfg.Configuration = spec
	}
	if f.Changed("mesh") {
		cfg.Mesh = meshClass
	}
	if f.Changed("exchange") {
		cfg.Exchange = exchange
	}
	if f.Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if f.Changed("max-iter") {
		cfg.MaxIterations = maxIter
	}
	if f.Changed("mixing") {
		cfg.Mixing = mixing
	}
	if f.Changed("no-tail") {
		cfg.LatterTail = !noTail
	}
	if f.Changed("workers") {
		cfg.Workers = workers
	}
	if f.Changed("require-convergence") {
		cfg.RequireConvergence = requireConv
	}
	return cfg, nil
}
