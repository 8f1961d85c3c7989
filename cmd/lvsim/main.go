package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/automation"
	"github.com/san-kum/lvsim/internal/config"
	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/export"
	"github.com/san-kum/lvsim/internal/logging"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/metrics"
	"github.com/san-kum/lvsim/internal/storage"
	"github.com/san-kum/lvsim/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	log      *logrus.Logger

	// Model parameters shared by run, live, converge and sweep
	dt       float64
	duration float64
	coefA    float64
	coefB    float64
	coefC    float64
	coefD    float64
	x0       float64
	y0       float64

	configFile string
	preset     string
	timeColumn string

	runName     string
	metricNames []string
	metricsFile string

	outFile  string
	svgFile  string
	snapshot string

	dts []float64

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	workers    int

	trials  int
	perturb float64
	seed    int64
)

// main is the entry point for the lvsim CLI; it registers commands and flags
// and exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lvsim",
		Short:        "predator-prey simulation lab",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, os.Stderr)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lvsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store it",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&timeColumn, "time-column", "t", "first CSV column: t or step")
	runCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to preset or \"run\")")
	runCmd.Flags().StringSliceVar(&metricNames, "metrics", nil, "metrics to compute (default all)")
	runCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus textfile metrics to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot populations and H over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase plot of prey against predator",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&svgFile, "svg", "", "also write the orbit as SVG")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "period and averages of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCSVCmd.Flags().StringVar(&timeColumn, "time-column", "", "override the stored time column (t or step)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "measure the convergence order across step sizes",
		Args:  cobra.NoArgs,
		RunE:  runConvergence,
	}
	addParamFlags(convergeCmd)
	convergeCmd.Flags().Float64SliceVar(&dts, "dts", []float64{0.01, 0.005, 0.002, 0.001, 0.0001}, "step sizes; the smallest is the reference")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().StringVar(&snapshot, "snapshot", "lvsim_orbit.svg", "path written by the S key")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter across a range",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "x0", "parameter to vary (dt, A, B, C, D, x0, y0)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 20, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")
	sweepCmd.Flags().IntVar(&workers, "workers", 4, "concurrent runs")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "perturb initial densities and count unstable runs",
		Args:  cobra.NoArgs,
		RunE:  runMonteCarlo,
	}
	addParamFlags(monteCarloCmd)
	monteCarloCmd.Flags().IntVar(&trials, "trials", 20, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturb, "perturb", 1, "maximum change of each initial density")
	monteCarloCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	monteCarloCmd.Flags().IntVar(&workers, "workers", 4, "concurrent runs")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, analyzeCmd, exportCmd, exportCSVCmd, exportJSONCmd,
		presetsCmd, convergeCmd, liveCmd, scenarioCmd, sweepCmd, monteCarloCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&coefA, "a", config.DefaultA, "prey growth rate A")
	cmd.Flags().Float64Var(&coefB, "b", config.DefaultB, "predation rate B")
	cmd.Flags().Float64Var(&coefC, "c", config.DefaultC, "predator growth per prey C")
	cmd.Flags().Float64Var(&coefD, "d", config.DefaultD, "predator death rate D")
	cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial prey density")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultY0, "initial predator density")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *float64
		val  float64
	}{
		{"dt", &cfg.Dt, dt},
		{"time", &cfg.Duration, duration},
		{"a", &cfg.A, coefA},
		{"b", &cfg.B, coefB},
		{"c", &cfg.C, coefC},
		{"d", &cfg.D, coefD},
		{"x0", &cfg.X0, x0},
		{"y0", &cfg.Y0, y0},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.val
		}
	}
	if flags.Lookup("time-column") != nil && flags.Changed("time-column") {
		cfg.TimeColumn = timeColumn
	}

	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		if err := logging.SetLevel(log, cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	name := runName
	if name == "" {
		name = preset
	}
	if name == "" {
		name = "run"
	}

	st := storage.New(dataDir, log)
	if err := st.Init(); err != nil {
		return err
	}

	ms, err := experiment.NewRegistry().GetMetrics(metricNames)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %s simulation...\n", name)
	res, err := experiment.Run(ctx, experiment.Config{
		Name:     name,
		Params:   cfg.Params(),
		Duration: cfg.Duration,
		Metrics:  ms,
	}, log)
	if err != nil {
		return err
	}

	meta := storage.NewMetadata(name, res.Sim, cfg.Duration, res.Metrics)
	meta.TimeColumn = cfg.TimeColumn
	runID, err := st.Save(meta, storage.Rows(res.Sim))
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", res.Sim.Steps())
	if u, ok := res.Sim.Status().(lotka.Unstable); ok {
		fmt.Printf("status: unstable (drift %.4g at step %d)\n", u.Drift, u.Step)
	} else {
		fmt.Println("status: stable")
	}
	fmt.Printf("final: x=%.6f y=%.6f H=%.6f\n", res.Sim.Last().X, res.Sim.Last().Y, res.Sim.LastEnergy())
	fmt.Printf("max relative drift: %.4g (tolerance %.4g)\n", res.Sim.MaxRelativeDrift(), lotka.Tolerance(cfg.Dt))

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(res.Metrics))
	for n := range res.Metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %s: %.6f\n", n, res.Metrics[n])
	}

	if metricsFile != "" {
		exp := metrics.NewExporter()
		exp.Record(runID, res.Sim.Steps(), res.Sim.Unstable(), res.Sim.MaxRelativeDrift(), res.Metrics)
		if err := exp.WriteTextfile(metricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.WithField("path", metricsFile).Info("metrics written")
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tX0\tY0\tSTEPS\tSTATUS")

	for _, run := range runs {
		status := "stable"
		if run.Unstable {
			status = "unstable"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.4f\t%g\t%g\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Params.Dt,
			run.Params.X0,
			run.Params.Y0,
			run.Steps,
			status,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []storage.Row, error) {
	st := storage.New(dataDir, log)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rows, err := st.LoadTrajectory(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no data in run %s", runID)
	}
	return meta, rows, nil
}

func seriesOf(rows []storage.Row) analysis.Series {
	s := analysis.Series{
		T: make([]float64, len(rows)),
		X: make([]float64, len(rows)),
		Y: make([]float64, len(rows)),
		H: make([]float64, len(rows)),
	}
	for i, r := range rows {
		s.T[i], s.X[i], s.Y[i], s.H[i] = r.T, r.X, r.Y, r.H
	}
	return s
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, rows, err := loadRun(args[0])
	if err != nil {
		return err
	}
	s := seriesOf(rows)

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(rows))

	for _, p := range []struct {
		data    []float64
		caption string
	}{
		{s.X, "prey x(t)"},
		{s.Y, "predator y(t)"},
	} {
		fmt.Println(asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		))
		fmt.Println()
	}

	finite := make([]float64, 0, len(s.H))
	for _, h := range s.H {
		if !math.IsInf(h, 0) && !math.IsNaN(h) {
			finite = append(finite, h)
		}
	}
	if len(finite) > 1 {
		fmt.Println(asciigraph.Plot(finite,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("H (finite samples)"),
		))
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, rows, err := loadRun(args[0])
	if err != nil {
		return err
	}
	s := seriesOf(rows)

	portrait := analysis.NewPhasePortrait(s.X, s.Y, 1)
	ex, ey := analysis.Equilibrium(meta.Params)
	portrait.Marker = &analysis.Point{X: ex, Y: ey}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("x-axis: prey, y-axis: predator, + marks (%.4g, %.4g)\n\n", ex, ey)
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 70, 25))

	if svgFile != "" {
		opts := export.DefaultSVGOptions()
		opts.Marker = portrait.Marker
		opts.Title = meta.ID
		if err := export.WriteSVG(svgFile, portrait.Points, opts); err != nil {
			return err
		}
		log.WithField("path", svgFile).Info("svg written")
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, rows, err := loadRun(args[0])
	if err != nil {
		return err
	}
	s := seriesOf(rows)
	p := meta.Params

	fmt.Printf("analysis: %s\n\n", meta.ID)

	ps := analysis.PowerSpectrum(s.X)
	if n := min(len(ps), 200); n > 1 {
		fmt.Println(asciigraph.Plot(ps[:n],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (prey)"),
		))
		fmt.Println()
	}

	ex, ey := analysis.Equilibrium(p)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "equilibrium\t(%.4g, %.4g)\n", ex, ey)
	fmt.Fprintf(w, "small-orbit period\t%.4f\n", analysis.SmallOrbitPeriod(p))

	if period, err := analysis.DominantPeriod(s.X, p.Dt); err == nil {
		fmt.Fprintf(w, "spectral period\t%.4f\n", period)
	} else {
		fmt.Fprintf(w, "spectral period\t%v\n", err)
	}
	if period, err := analysis.CrossingPeriod(s.T, s.X, ex); err == nil {
		fmt.Fprintf(w, "crossing period\t%.4f\n", period)
	} else {
		fmt.Fprintf(w, "crossing period\t%v\n", err)
	}

	sum := analysis.Summarize(s)
	fmt.Fprintf(w, "prey mean / std\t%.4f / %.4f\n", sum.MeanX, sum.StdX)
	fmt.Fprintf(w, "predator mean / std\t%.4f / %.4f\n", sum.MeanY, sum.StdY)
	fmt.Fprintf(w, "prey range\t[%.4f, %.4f]\n", sum.MinX, sum.MaxX)
	fmt.Fprintf(w, "predator range\t[%.4f, %.4f]\n", sum.MinY, sum.MaxY)
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// output opens outFile, or returns stdout when it is empty.
func output() (*os.File, func() error, error) {
	if outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	meta, rows, err := loadRun(args[0])
	if err != nil {
		return err
	}

	col := meta.TimeColumn
	if timeColumn != "" {
		col = timeColumn
	}

	f, closeFn, err := output()
	if err != nil {
		return err
	}
	if err := storage.WriteTrajectory(f, rows, col); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, rows, err := loadRun(args[0])
	if err != nil {
		return err
	}

	f, closeFn, err := output()
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(f, *meta, rows); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDT\tA\tB\tC\tD\tX0\tY0\tTIME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			name, p.Dt, p.A, p.B, p.C, p.D, p.X0, p.Y0, p.Duration)
	}
	return w.Flush()
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("time") && preset == "" && configFile == "" {
		cfg.Duration = 1
	}

	fmt.Printf("convergence over T=%g with %d step sizes...\n", cfg.Duration, len(dts))
	res, err := analysis.Convergence(cfg.Params(), cfg.Duration, dts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tERROR\tRATIO")
	for i, d := range res.Dts {
		ratio := "-"
		if i > 0 {
			ratio = fmt.Sprintf("%.3f", res.Errors[i-1]/res.Errors[i])
		}
		fmt.Fprintf(w, "%g\t%.6e\t%s\n", d, res.Errors[i], ratio)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nreference dt: %g (x=%.6f y=%.6f)\n", res.RefDt, res.Reference.X, res.Reference.Y)
	fmt.Printf("observed order: %.3f\n", res.Order)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.Params(), snapshot)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir, log)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("scenario %s: %s\n", sc.Name, sc.Description)
	results, err := automation.NewRunner(st, log).RunScenario(ctx, sc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSTATES\tSTATUS\tMAX DRIFT\tRUN ID")
	for _, r := range results {
		status := "stable"
		if !r.Completed {
			status = "unstable"
		}
		id := r.RunID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.4g\t%s\n", r.Name, r.Sim.Steps(), status, r.Sim.MaxRelativeDrift(), id)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
		Base:      cfg,
		ParamName: sweepParam,
		ParamMin:  sweepFrom,
		ParamMax:  sweepTo,
		NumSteps:  sweepSteps,
		Workers:   workers,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSTATES\tSTATUS\tMAX DRIFT\tPEAK PREY\tPEAK PREDATOR\n", sweepParam)
	for _, r := range results {
		status := "stable"
		if !r.Completed {
			status = "unstable"
		}
		fmt.Fprintf(w, "%g\t%d\t%s\t%.4g\t%.4f\t%.4f\n",
			r.ParamValue, r.Steps, status, r.MaxDrift, r.Metrics["peak_prey"], r.Metrics["peak_predator"])
	}
	return w.Flush()
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := automation.RunMonteCarlo(ctx, &automation.MonteCarloConfig{
		Base:         cfg,
		Perturbation: perturb,
		NumTrials:    trials,
		Workers:      workers,
		Seed:         seed,
	})
	if err != nil {
		return err
	}

	stable, unstable := automation.MonteCarloStats(results)
	fmt.Printf("trials: %d  stable: %d  unstable: %d\n", len(results), stable, unstable)

	worst := 0.0
	for _, r := range results {
		worst = max(worst, r.MaxDrift)
	}
	fmt.Printf("largest max drift: %.4g (tolerance %.4g)\n", worst, lotka.Tolerance(cfg.Dt))
	return nil
}
