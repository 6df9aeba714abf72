package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/debug"
	"github.com/san-kum/rain/internal/export"
	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/metrics"
	"github.com/san-kum/rain/internal/palette"
	"github.com/san-kum/rain/internal/rain"
	"github.com/san-kum/rain/internal/sim"
	"github.com/san-kum/rain/internal/store"
	"github.com/san-kum/rain/internal/viz"
	"github.com/spf13/cobra"
)

var (
	colorName  string
	speed      int
	direction  string
	bold       bool
	charset    string
	configFile string
	preset     string
	debugFile  string
	seed       int64
)

// Headless runs. Each subcommand keeps its own dimensions so flag defaults
// do not overwrite one another.
type headlessFlags struct {
	width  int
	height int
	ticks  int
}

var (
	bench    = headlessFlags{}
	plot     = headlessFlags{}
	snapshot = headlessFlags{}
	runs     int
	force    bool
	saveDir  string
	svgFile  string
)

// main registers the rain commands and runs the live animation when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rain",
		Short: "digital rain in the terminal",
		Long:  "Digital rain in the terminal. Use c to cycle colors, 0-9 to change speed, b for bold, arrows to change direction and q to quit.",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "", "named charset ("+strings.Join(rain.CharsetNames(), ", ")+") or literal glyphs")
	rootCmd.PersistentFlags().StringVarP(&direction, "direction", "d", "down", "fall direction: down, up, left, right")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.Flags().StringVarP(&colorName, "color", "c", "green", "blue, cyan, red, purple, yellow, green, rainbow")
	rootCmd.Flags().IntVarP(&speed, "speed", "s", 0, "speed: 1-10")
	rootCmd.Flags().BoolVarP(&bold, "bold", "b", false, "bold glyphs")
	rootCmd.Flags().StringVar(&debugFile, "debug", "", "write debug log to this file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLOR\tSPEED\tDIRECTION\tCHARSET")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", name, p.Color, p.Speed, p.Direction, p.Charset)
			}
			w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "advance headless grids and report stream metrics",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&bench.width, "width", 160, "display width")
	benchCmd.Flags().IntVar(&bench.height, "height", 48, "display height")
	benchCmd.Flags().IntVar(&bench.ticks, "ticks", 5000, "ticks per run")
	benchCmd.Flags().IntVar(&runs, "runs", 4, "concurrent runs")
	benchCmd.Flags().StringVar(&saveDir, "save", "", "save each run under this directory")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot lit-cell density per tick",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plot.width, "width", 80, "display width")
	plotCmd.Flags().IntVar(&plot.height, "height", 24, "display height")
	plotCmd.Flags().IntVar(&plot.ticks, "ticks", 300, "ticks to plot")
	plotCmd.Flags().StringVar(&saveDir, "save", "", "save the run under this directory")
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the series as svg")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot <file.svg>",
		Short: "advance a headless grid and write the final frame as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapshot.width, "width", 80, "display width")
	snapshotCmd.Flags().IntVar(&snapshot.height, "height", 24, "display height")
	snapshotCmd.Flags().IntVar(&snapshot.ticks, "ticks", 200, "ticks before the snapshot")
	snapshotCmd.Flags().StringVarP(&colorName, "color", "c", "green", "blue, cyan, red, purple, yellow, green, rainbow")
	snapshotCmd.Flags().BoolVarP(&bold, "bold", "b", false, "bold glyphs")

	runsCmd := &cobra.Command{
		Use:   "runs <dir> [id]",
		Short: "list saved runs, or chart the series of one",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  listRuns,
	}

	rootCmd.AddCommand(presetsCmd, configCmd, benchCmd, plotCmd, snapshotCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers the config file, the preset and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = palette.Parse(colorName).String()
	}
	if flags.Changed("speed") {
		// Out-of-range levels fall back to the default interval.
		if speed < config.MinSpeed || speed > config.MaxSpeed {
			speed = 0
		}
		cfg.Speed = speed
	}
	if flags.Changed("direction") {
		cfg.Direction = direction
	}
	if flags.Changed("bold") {
		cfg.Bold = bold
	}
	if flags.Changed("charset") {
		cfg.Charset = charset
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if debugFile != "" {
		if err := debug.Enable(debugFile); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Close()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}

	src := rain.NewRandomSource(cfg.Seed, glyphs)
	s := sim.New(grid.NewReconciler(src, cfg.Bounds()))
	anim := cfg.Animation()
	if debug.IsEnabled() {
		debug.Log("starting: color=%s interval=%v direction=%s bold=%v seed=%d charset=%q",
			anim.Color, anim.Interval, anim.Direction, anim.Bold, cfg.Seed, string(src.Charset()))
	}

	p := tea.NewProgram(viz.NewModel(s, anim, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

func headlessConfig(cfg *config.Config, f headlessFlags) (sim.Config, error) {
	dir, err := config.ParseDirection(cfg.Direction)
	if err != nil {
		return sim.Config{}, err
	}
	return sim.Config{
		Width:     f.width,
		Height:    f.height,
		Ticks:     f.ticks,
		Direction: dir,
		Seed:      cfg.Seed,
	}, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}
	simCfg, err := headlessConfig(cfg, bench)
	if err != nil {
		return err
	}

	factory := func(seed int64) *sim.Simulator {
		s := sim.NewSeeded(seed, glyphs, cfg.Bounds())
		s.AddMetric(metrics.NewDensity())
		s.AddMetric(metrics.NewHeads())
		s.AddMetric(metrics.NewEmitting())
		return s
	}

	fmt.Printf("benchmarking %dx%d falling %s: %d runs x %d ticks\n\n",
		simCfg.Width, simCfg.Height, simCfg.Direction, runs, simCfg.Ticks)

	results, err := sim.NewEnsemble(factory, runs, cfg.Seed).Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tTICKS\tTICKS/S\tDENSITY\tHEADS\tEMITTING")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%.4f\t%.2f\t%.4f\n",
			r.Seed, r.Ticks, r.TickRate(),
			r.Metrics["density"], r.Metrics["heads"], r.Metrics["emitting"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if saveDir == "" {
		return nil
	}
	st := store.New(saveDir)
	if err := st.Init(); err != nil {
		return err
	}
	for _, r := range results {
		runCfg := simCfg
		runCfg.Seed = r.Seed
		id, err := st.Save("bench", runCfg, r, nil)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", id)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}
	simCfg, err := headlessConfig(cfg, plot)
	if err != nil {
		return err
	}

	s := sim.NewSeeded(cfg.Seed, glyphs, cfg.Bounds())
	trace := metrics.NewTrace(simCfg.Ticks)
	s.AddObserver(trace)
	s.AddMetric(metrics.NewDensity())
	result, err := s.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	chart := asciigraph.Plot(trace.Values(),
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("lit-cell density, %dx%d falling %s", simCfg.Width, simCfg.Height, simCfg.Direction)))
	fmt.Println(chart)

	if svgFile != "" {
		svg := export.SeriesToSVG(trace.Values(), 800, 200, export.Hex(palette.Parse(cfg.Color)))
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}
	if saveDir != "" {
		st := store.New(saveDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save("plot", simCfg, result, trace.Values())
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", id)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	glyphs, err := cfg.Glyphs()
	if err != nil {
		return err
	}
	simCfg, err := headlessConfig(cfg, snapshot)
	if err != nil {
		return err
	}

	src := rain.NewRandomSource(cfg.Seed, glyphs)
	s := sim.New(grid.NewReconciler(src, cfg.Bounds()))
	if _, err := s.Run(context.Background(), simCfg); err != nil {
		return err
	}

	frame := grid.NewCompositor(src).Compose(s.Grid(), cfg.Animation())
	if err := os.WriteFile(args[0], []byte(export.FrameToSVG(frame, 16)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s after %d ticks\n", args[0], s.Ticks())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(args[0])
	if len(args) == 2 {
		return showRun(st, args[1])
	}

	list, err := st.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tDIRECTION\tTICKS\tTICKS/S\tDENSITY")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\t%.0f\t%.4f\n",
			r.ID, r.Width, r.Height, r.Direction, r.Ticks, r.TickRate, r.Metrics["density"])
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "rain.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func showRun(st *store.Store, id string) error {
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %dx%d falling %s, %d ticks, seed %d\n",
		meta.ID, meta.Width, meta.Height, meta.Direction, meta.Ticks, meta.Seed)
	if len(series) == 0 {
		fmt.Println("no series saved for this run")
		return nil
	}
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("lit-cell density")))
	return nil
}
