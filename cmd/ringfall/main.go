package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/dkoval/ringfall/internal/arena"
	"github.com/dkoval/ringfall/internal/config"
	"github.com/dkoval/ringfall/internal/metrics"
	"github.com/dkoval/ringfall/internal/session"
	"github.com/dkoval/ringfall/internal/storage"
	"github.com/dkoval/ringfall/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	budget     float64
	ringCount  int
	gapWidth   float64
	frameRate  int
	gravity    float64
	theme      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ringfall",
		Short: "ring-escape physics toy",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ringfall", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless session and record it",
		RunE:  runHeadless,
	}
	addSessionFlags(runCmd)
	runCmd.Flags().Float64Var(&budget, "time", 600.0, "simulated-time budget in seconds")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a session with live visualization",
		RunE:  runLive,
	}
	addSessionFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	arenaCmd := &cobra.Command{
		Use:   "arena",
		Short: "free-bounce arena, click to drop balls",
		RunE:  runArena,
	}
	addSessionFlags(arenaCmd)
	arenaCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.PresetNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, arenaCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVar(&ringCount, "rings", 0, "number of rings")
	cmd.Flags().Float64Var(&gapWidth, "gap", 0, "gap width in radians")
	cmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "gravity (negative pulls down)")
}

// buildOptions layers defaults, preset, config file, and changed flags,
// in that order.
func buildOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()

	if preset != "" {
		p := config.Preset(preset)
		if p == nil {
			return config.Options{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.PresetNames())
		}
		opts = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return config.Options{}, fmt.Errorf("failed to load config: %w", err)
		}
		opts = loaded
	}

	if cmd.Flags().Changed("seed") {
		opts.Seed = seed
	}
	if cmd.Flags().Changed("rings") {
		opts.RingCount = ringCount
	}
	if cmd.Flags().Changed("gap") {
		opts.GapWidth = gapWidth
	}
	if cmd.Flags().Changed("fps") {
		opts.FrameRate = frameRate
	}
	if cmd.Flags().Changed("gravity") {
		opts.Gravity = gravity
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return *opts, nil
}

// runLoop drives the session until it completes or the simulated-time
// budget runs out. The budget is checked against time accumulated
// across the whole loop, not Session.Elapsed, which restarts from zero
// whenever the session silently regenerates a failed run.
func runLoop(sess *session.Session, dt, budget float64, collectors []metrics.Metric) ([]storage.Sample, session.Snapshot) {
	var samples []storage.Sample
	var snap session.Snapshot
	var simTime float64
	for {
		snap = sess.Advance(dt)
		simTime += dt
		for _, m := range collectors {
			m.Observe(snap)
		}
		samples = append(samples, storage.Sample{
			Time:  snap.Elapsed,
			X:     snap.Ball.Pos.X,
			Y:     snap.Ball.Pos.Y,
			VX:    sess.Velocity().X,
			VY:    sess.Velocity().Y,
			Speed: snap.Speed,
			Alive: snap.AliveRings,
		})
		if snap.Phase == session.Complete || simTime > budget {
			break
		}
	}
	return samples, snap
}

func runHeadless(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	sess := session.New(opts, rng)
	dt := 1.0 / float64(opts.FrameRate)
	collectors := metrics.Defaults()

	fmt.Println("running session...")
	start := time.Now()

	samples, snap := runLoop(sess, dt, budget, collectors)

	elapsed := time.Since(start)

	presetName := preset
	if presetName == "" {
		presetName = "default"
	}
	values := make(map[string]float64, len(collectors))
	for _, m := range collectors {
		values[m.Name()] = m.Value()
	}

	runID, err := st.Save(storage.RunMetadata{
		Preset:  presetName,
		Seed:    opts.Seed,
		Dt:      dt,
		Elapsed: snap.Elapsed,
		Outcome: snap.Phase.String(),
		Escapes: snap.Escapes,
		Bounces: snap.Bounces,
		Resets:  snap.Resets,
		Metrics: values,
	}, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLOCK\tOUTCOME\tESCAPES\tBOUNCES\tRESETS")
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
		snap.Clock, snap.Phase, snap.Escapes, snap.Bounces, snap.Resets)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for _, m := range collectors {
		fmt.Printf("  %s: %.4f\n", m.Name(), m.Value())
	}

	if events := sess.Events(); len(events) > 0 {
		tail := events
		if len(tail) > 10 {
			tail = tail[len(tail)-10:]
		}
		fmt.Printf("\nlast %d events:\n", len(tail))
		for _, e := range tail {
			if e.Ring >= 0 {
				fmt.Printf("  %8.3fs  %-7s ring %d\n", e.Time, e.Kind, e.Ring)
			} else {
				fmt.Printf("  %8.3fs  %s\n", e.Time, e.Kind)
			}
		}
	}

	if len(samples) > 1 {
		speeds := make([]float64, len(samples))
		for i, s := range samples {
			speeds[i] = s.Speed
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(speeds,
			asciigraph.Height(8), asciigraph.Width(72), asciigraph.Caption("ball speed")))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	if theme != "" {
		viz.SetTheme(theme)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	p := tea.NewProgram(viz.NewLiveModel(opts, rng), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runArena(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	if theme != "" {
		viz.SetTheme(theme)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	world := arena.NewWorld(1.0, opts.Gravity, rng)
	p := tea.NewProgram(viz.NewArenaModel(world, opts.FrameRate),
		tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tELAPSED\tOUTCOME\tESCAPES\tBOUNCES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%s\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Elapsed,
			run.Outcome,
			run.Escapes,
			run.Bounces,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("outcome: %s\n", meta.Outcome)
	fmt.Printf("samples: %d\n\n", len(samples))

	speed := make([]float64, len(samples))
	radius := make([]float64, len(samples))
	alive := make([]float64, len(samples))
	for i, s := range samples {
		speed[i] = s.Speed
		radius[i] = math.Hypot(s.X, s.Y)
		alive[i] = float64(s.Alive)
	}

	for _, plot := range []struct {
		data    []float64
		caption string
	}{
		{speed, "ball speed"},
		{radius, "radial distance"},
		{alive, "alive rings"},
	} {
		fmt.Println(asciigraph.Plot(plot.data,
			asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption(plot.caption)))
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSON(args[0], os.Stdout)
}
