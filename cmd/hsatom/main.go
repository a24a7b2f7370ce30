package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/config"
	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
	"github.com/san-kum/hsatom/internal/metrics"
	"github.com/san-kum/hsatom/internal/potential"
	"github.com/san-kum/hsatom/internal/tui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hsatom",
		Short:        "Herman-Skillman self-consistent atomic potentials",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every SCF iteration to stderr")

	solveCmd := &cobra.Command{
		Use:   "solve [element]",
		Short: "solve an atom and print its orbitals",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solveAtom,
	}
	addSolveFlags(solveCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [element]",
		Short: "plot the potential, density, an orbital or ΔV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotAtom,
	}
	addSolveFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotWhat, "what", "potential", "potential, bare, rho, orbital or delta")
	plotCmd.Flags().IntVar(&plotN, "n", 1, "orbital principal quantum number")
	plotCmd.Flags().IntVar(&plotL, "l", 0, "orbital angular momentum")

	liveCmd := &cobra.Command{
		Use:   "live [element]",
		Short: "solve with a live view of the iterations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)
	liveCmd.Flags().BoolVar(&plainLive, "plain", false, "redraw frames on stdout instead of full screen")
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate for --plain (0 = every iteration)")

	compareCmd := &cobra.Command{
		Use:   "compare [element]",
		Short: "solve on every mesh class and compare",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareMeshes,
	}
	addSolveFlags(compareCmd)

	configCmd := &cobra.Command{
		Use:   "config [element] [path]",
		Short: "write the resolved configuration as yaml (stdout without a path)",
		Args:  cobra.MaximumNArgs(2),
		RunE:  writeConfig,
	}
	addSolveFlags(configCmd)

	alphaCmd := &cobra.Command{
		Use:   "alpha [Z...]",
		Short: "print statistical exchange coefficients",
		RunE:  printAlpha,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMESH\tEXCHANGE\tTOL\tMAX\tMIXING")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0e\t%d\t%.2f\n",
					name, p.Mesh, p.Exchange, p.Tolerance, p.MaxIterations, p.Mixing)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(solveCmd, plotCmd, liveCmd, compareCmd, configCmd, alphaCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSolver() *atom.Solver {
	s := atom.NewSolver(nil)
	if verbose {
		s.AddObserver(atom.NewLogObserver(os.Stderr))
	}
	return s
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// prepare resolves the configuration into a solve target and settings.
func prepare(cmd *cobra.Command, args []string) (element.Element, element.Configuration, atom.Config, error) {
	cfg, err := resolve(cmd, args)
	if err != nil {
		return element.Element{}, nil, atom.Config{}, err
	}
	el, conf, err := cfg.Target()
	if err != nil {
		return element.Element{}, nil, atom.Config{}, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return element.Element{}, nil, atom.Config{}, err
	}
	return el, conf, settings, nil
}

func solveAtom(cmd *cobra.Command, args []string) error {
	el, conf, settings, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	s := newSolver()
	rate := metrics.NewConvergenceRate()
	s.AddObserver(rate)

	start := time.Now()
	a, err := s.Solve(ctx, el, conf, settings)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := a.Status()
	fmt.Printf("%s (%s, Z=%d)  %s\n", el.Name, el.Symbol, el.Z, conf)
	fmt.Printf("  %s in %v\n", st, elapsed.Round(time.Millisecond))
	fmt.Printf("  mesh %s, %d points, exchange %s\n", settings.Mesh, a.Mesh().Count(), settings.Exchange)
	fmt.Printf("  convergence rate %.3f\n", rate.Value())

	qe, err := metrics.ChargeError(a)
	if err != nil {
		return err
	}
	fmt.Printf("  electrons %.4g, charge error %.2e, tail from r=%.4g (residual %.1e)\n",
		a.Electrons(), qe, tailRadius(a), metrics.TailResidual(a))
	fmt.Printf("  Σ occ·ε = %.6f Ry\n\n", metrics.EigenvalueSum(a))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORBITAL\tOCC\tENERGY (Ry)\tENERGY (eV)\t<r> (a0)\tNODES")
	for _, o := range a.Orbitals() {
		r, err := o.MeanRadius(a.Mesh())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.6f\t%.4f\t%.4f\t%d\n",
			o.Label(), o.Occupancy, o.Energy, o.Energy*rydbergEV, r, o.Nodes())
	}
	return w.Flush()
}

const rydbergEV = 13.605693122994

func tailRadius(a *atom.Atom) float64 {
	if a.TailStart() >= a.Mesh().Count() {
		return math.Inf(1)
	}
	return a.Mesh().R(a.TailStart())
}

func plotAtom(cmd *cobra.Command, args []string) error {
	el, conf, settings, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	s := newSolver()
	history := metrics.NewDeltaHistory()
	s.AddObserver(history)
	a, err := s.Solve(ctx, el, conf, settings)
	if err != nil {
		return err
	}

	m := a.Mesh()
	var data []float64
	var caption string
	switch plotWhat {
	case "potential", "bare":
		v := a.Potential()
		caption = "-r·V(r)/2 with exchange, by mesh index"
		if plotWhat == "bare" {
			v = a.PotentialSansExchange()
			caption = "-r·V(r)/2 without exchange, by mesh index"
		}
		data = make([]float64, 0, m.Count())
		for i := 1; i < m.Count(); i++ {
			data = append(data, -m.R(i)*v[i]/2)
		}
	case "rho":
		rho := a.Rho()
		caption = "radial density -4πr²ρ(r), by mesh index"
		for i := 1; i < m.Count(); i++ {
			data = append(data, -4*math.Pi*m.R(i)*m.R(i)*rho[i])
		}
	case "orbital":
		o, err := a.GetOrbital(plotN, plotL)
		if err != nil {
			return err
		}
		data = o.P[1:]
		caption = fmt.Sprintf("P(r) for %s, ε=%.5f Ry", o.Label(), o.Energy)
	case "delta":
		for _, d := range history.Deltas() {
			data = append(data, math.Log10(d))
		}
		caption = "log10 ΔV per iteration"
	default:
		return fmt.Errorf("unknown plot: %s (potential, bare, rho, orbital, delta)", plotWhat)
	}
	if len(data) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	fmt.Printf("%s %s  %s\n\n", el.Symbol, conf, a.Status())
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	el, conf, settings, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	s := newSolver()
	var a *atom.Atom
	if plainLive {
		m, err := mesh.New(el.Z, settings.Mesh)
		if err != nil {
			return err
		}
		r := tui.NewLiveRenderer(el.Symbol+" "+conf.String(), el.Z, m, frameRate, os.Stdout)
		s.AddObserver(r)
		r.Start()
		a, err = s.Solve(ctx, el, conf, settings)
		r.Stop()
		if err != nil {
			return err
		}
	} else {
		a, err = tui.Run(ctx, s, el, conf, settings)
		if err != nil {
			return err
		}
	}
	fmt.Printf("\n%s %s  %s\n", el.Symbol, conf, a.Status())
	return nil
}

func compareMeshes(cmd *cobra.Command, args []string) error {
	el, conf, settings, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("%s %s, exchange %s\n\n", el.Symbol, conf, settings.Exchange)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MESH\tPOINTS\tITER\tΔV\tΣ occ·ε (Ry)\tTIME")
	for _, class := range []mesh.Class{mesh.Abridged, mesh.Normal, mesh.Double} {
		run := settings
		run.Mesh = class
		start := time.Now()
		a, err := newSolver().Solve(ctx, el, conf, run)
		if err != nil {
			fmt.Fprintf(w, "%s\t%d\t-\t-\t%v\t-\n", class, class.Points(), err)
			continue
		}
		st := a.Status()
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2e\t%.6f\t%v\n",
			class, class.Points(), st.Iterations, st.MaxDelta, metrics.EigenvalueSum(a),
			time.Since(start).Round(time.Millisecond))
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 2 {
		path, args = args[1], args[:1]
	}
	cfg, err := resolve(cmd, args)
	if err != nil {
		return err
	}
	if _, err := cfg.Settings(); err != nil {
		return err
	}
	if path == "" || path == "-" {
		return config.Write(os.Stdout, cfg)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func printAlpha(cmd *cobra.Command, args []string) error {
	var zs []int
	for _, a := range args {
		el, err := element.Lookup(a)
		if err != nil {
			return err
		}
		zs = append(zs, el.Z)
	}
	if len(zs) == 0 {
		for z := 1; z <= potential.MaxAlphaZ; z++ {
			zs = append(zs, z)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Z\tSYMBOL\tALPHA")
	for _, z := range zs {
		el, err := element.ByNumber(z)
		if err != nil {
			return err
		}
		note := ""
		if z > potential.MaxAlphaZ {
			note = " (Z=" + strconv.Itoa(potential.MaxAlphaZ) + " value)"
		}
		fmt.Fprintf(w, "%d\t%s\t%.5f%s\n", z, el.Symbol, potential.StatisticalAlpha(z), note)
	}
	return w.Flush()
}
