package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bodykin/internal/config"
	"github.com/san-kum/bodykin/internal/driver"
	"github.com/san-kum/bodykin/internal/motion"
	"github.com/san-kum/bodykin/internal/storage"
	"github.com/san-kum/bodykin/internal/viz"
)

var (
	dataDir    string
	configFile string
	dt         float64
	duration   float64
	samples    int
	series     string
	bodyIndex  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bodykin",
		Short: "2D rigid and deforming body kinematics lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the live view of the stock scenario.
			if err := viz.Run(config.DefaultConfig()); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bodykin", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario config file (yaml)")

	evalCmd := &cobra.Command{
		Use:   "eval [scenario]",
		Short: "tabulate kinematic state over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  evalScenario,
	}
	evalCmd.Flags().IntVar(&samples, "samples", 11, "number of sample times")
	evalCmd.Flags().Float64Var(&duration, "time", 0, "override duration")
	evalCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "override timestep")
	runCmd.Flags().Float64Var(&duration, "time", 0, "override duration")

	plotCmd := &cobra.Command{
		Use:   "plot [scenario]",
		Short: "plot a trajectory series in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotScenario,
	}
	plotCmd.Flags().StringVar(&series, "series", "cy", "series: cx, cy or alpha")
	plotCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "animate a scenario in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenario(args)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(config.Presets))
			for name := range config.Presets {
				names = append(names, name)
			}
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBODIES\tDT\tDURATION")
			for _, name := range names {
				cfg := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%g\t%g\n", name, len(cfg.Bodies), cfg.Dt, cfg.Duration)
			}
			return w.Flush()
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs stored")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tSTATE DIM\tWHEN")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					r.ID, r.Scenario, r.Steps, r.StateDim, r.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(evalCmd, runCmd, plotCmd, liveCmd, presetsCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadScenario resolves the scenario from --config, a preset name, or
// the default, in that order.
func loadScenario(args []string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if len(args) == 0 {
		return config.DefaultConfig(), nil
	}
	cfg, ok := config.Presets[args[0]]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (try 'bodykin presets')", args[0])
	}
	return cfg, nil
}

func evalScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	bodies, motions, err := cfg.Build()
	if err != nil {
		return err
	}
	if bodyIndex < 0 || bodyIndex >= len(bodies) {
		return fmt.Errorf("body index %d out of range (%d bodies)", bodyIndex, len(bodies))
	}

	end := cfg.Duration
	if duration > 0 {
		end = duration
	}
	if samples < 2 {
		samples = 2
	}

	m := motions[bodyIndex]
	rigid, ok := m.(*motion.RigidBodyMotion)
	if !ok {
		if comp, isComp := m.(*motion.RigidAndDeformingMotion); isComp {
			rigid = comp.Rigid
		} else {
			return fmt.Errorf("body %d has no rigid kinematics to tabulate", bodyIndex)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "t\tcx\tcy\tdcx\tdcy\tddcx\tddcy\talpha\tdalpha\tddalpha\t")
	for i := 0; i < samples; i++ {
		t := end * float64(i) / float64(samples-1)
		st := rigid.Motion(t)
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			t, st.C.X, st.C.Y, st.CDot.X, st.CDot.Y, st.CDDot.X, st.CDDot.Y,
			st.Alpha, st.AlphaDot, st.AlphaDDot)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}

	bodies, motions, err := cfg.Build()
	if err != nil {
		return err
	}
	d, err := driver.New(bodies, motions)
	if err != nil {
		return err
	}

	result, err := d.Run(context.Background(), driver.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Name, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d steps, state dim %d\n", runID, result.Steps, len(result.States[0]))
	for i, b := range bodies {
		fmt.Printf("body %d: cent=(%.4f, %.4f) alpha=%.4f\n", i, b.Cent.X, b.Cent.Y, b.Alpha)
	}
	return nil
}

func plotScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	bodies, motions, err := cfg.Build()
	if err != nil {
		return err
	}
	if bodyIndex < 0 || bodyIndex >= len(bodies) {
		return fmt.Errorf("body index %d out of range (%d bodies)", bodyIndex, len(bodies))
	}
	d, err := driver.New(bodies, motions)
	if err != nil {
		return err
	}

	// Offset of this body's chunk in the flat state vector.
	offset := 0
	for i := 0; i < bodyIndex; i++ {
		offset += motions[i].StateDim(bodies[i])
	}
	switch motions[bodyIndex].(type) {
	case *motion.RigidBodyMotion, *motion.RigidAndDeformingMotion:
		// pose state occupies the first three slots of the chunk
	default:
		return fmt.Errorf("body %d carries no pose state to plot", bodyIndex)
	}

	var idx int
	switch series {
	case "cx":
		idx = offset
	case "cy":
		idx = offset + 1
	case "alpha":
		idx = offset + 2
	default:
		return fmt.Errorf("unknown series %q (want cx, cy or alpha)", series)
	}

	result, err := d.Run(context.Background(), driver.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	if err != nil {
		return err
	}

	data := make([]float64, 0, len(result.States))
	for _, st := range result.States {
		data = append(data, st[idx])
	}
	// Thin to terminal width.
	if len(data) > 120 {
		stride := int(math.Ceil(float64(len(data)) / 120))
		thinned := make([]float64, 0, 120)
		for i := 0; i < len(data); i += stride {
			thinned = append(thinned, data[i])
		}
		data = thinned
	}

	fmt.Printf("%s: body %d, %s over %g time units\n", cfg.Name, bodyIndex, series, cfg.Duration)
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(16), asciigraph.Width(100)))
	return nil
}
