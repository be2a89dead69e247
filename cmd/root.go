package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hpa-sim/hpa-sim/sim"
	"github.com/hpa-sim/hpa-sim/sim/metric"
	"github.com/hpa-sim/hpa-sim/sim/trace"
)

var (
	// CLI flags for the run
	seed     int64   // Seed for metric noise generation
	duration float64 // Total simulated time (seconds)
	timeStep float64 // Simulation tick size (seconds)
	logLevel string  // Log verbosity level

	// Control loop configs
	syncPeriod      float64 // Interval between scaling commits (seconds)
	minReplicas     int     // Lower replica bound
	maxReplicas     int     // Upper replica bound
	initialReplicas int     // Replica count at t=0
	target          float64 // Target metric value

	// Metric source configs
	scenario        string  // Built-in metric scenario name
	metricBase      float64 // Scenario resting level
	metricAmplitude float64 // Scenario excursion above/around base
	metricPeriod    float64 // Scenario repetition period (seconds)
	noiseStdDev     float64 // Gaussian noise stddev (0 disables)
	metricExpr      string  // Custom metric formula of t (overrides scenario)

	// Behavior configs
	behaviorFile     string // Path to a scaleUp/scaleDown YAML stanza
	behaviorTemplate string // Built-in behavior template name

	// Output configs
	timelineCSV  string // Timeline CSV output path ("" = skip)
	decisionsCSV string // Decision log CSV output path ("" = skip)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hpa-sim",
	Short: "Simulator for the HPA configurable scaling behavior control loop",
}

// buildSource constructs the metric source from CLI flags.
func buildSource() (metric.Source, error) {
	if metricExpr != "" {
		return metric.NewExpression(metricExpr, target)
	}
	return metric.NewScenario(scenario, metric.ScenarioParams{
		Base:          metricBase,
		Amplitude:     metricAmplitude,
		PeriodSeconds: metricPeriod,
		NoiseStdDev:   noiseStdDev,
		Seed:          seed,
	})
}

// buildBehavior constructs the behavior config from CLI flags.
func buildBehavior() (sim.Behavior, error) {
	if behaviorFile != "" {
		return sim.LoadBehavior(behaviorFile)
	}
	return sim.Template(behaviorTemplate)
}

// writeCSV opens path and streams rows via the given writer function.
func writeCSV(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return write(f)
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scaling behavior simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		source, err := buildSource()
		if err != nil {
			logrus.Fatalf("Invalid metric source: %v", err)
		}
		behavior, err := buildBehavior()
		if err != nil {
			logrus.Fatalf("Invalid behavior config: %v", err)
		}

		loop, err := sim.NewControlLoop(sim.Config{
			MinReplicas:       minReplicas,
			MaxReplicas:       maxReplicas,
			InitialReplicas:   initialReplicas,
			Target:            target,
			SyncPeriodSeconds: syncPeriod,
			TimeStepSeconds:   timeStep,
		}, behavior, source)
		if err != nil {
			logrus.Fatalf("Invalid simulation config: %v", err)
		}

		logrus.Infof("Starting simulation: duration=%vs step=%vs sync=%vs target=%v replicas=[%d,%d]",
			duration, timeStep, syncPeriod, target, minReplicas, maxReplicas)

		if err := loop.Start(); err != nil {
			logrus.Fatalf("Could not start loop: %v", err)
		}
		if _, err := loop.Advance(duration); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		rt := loop.Trace()
		printSummary(trace.Summarize(rt))

		if timelineCSV != "" {
			if err := writeCSV(timelineCSV, func(f *os.File) error {
				return trace.WriteTimelineCSV(f, rt.Samples)
			}); err != nil {
				logrus.Fatalf("Could not write timeline: %v", err)
			}
			logrus.Infof("Timeline written to %s", timelineCSV)
		}
		if decisionsCSV != "" {
			if err := writeCSV(decisionsCSV, func(f *os.File) error {
				return trace.WriteDecisionsCSV(f, rt.Decisions)
			}); err != nil {
				logrus.Fatalf("Could not write decision log: %v", err)
			}
			logrus.Infof("Decision log written to %s", decisionsCSV)
		}

		logrus.Info("Simulation complete.")
	},
}

// printSummary reports run aggregates on stdout.
func printSummary(s *trace.RunSummary) {
	fmt.Printf("ticks: %d  decisions: %d  commits: %d\n", s.Ticks, s.Decisions, s.Commits)
	fmt.Printf("decisions by direction: up=%d down=%d hold=%d gated=%d\n",
		s.ByDirection[trace.DirectionUp], s.ByDirection[trace.DirectionDown],
		s.ByDirection[trace.DirectionHold], s.ByDirection[trace.DirectionGated])
	fmt.Printf("replicas: min=%.0f mean=%.2f max=%.0f final=%d (scaled up %d, down %d)\n",
		s.ReplicaMin, s.ReplicaMean, s.ReplicaMax, s.ReplicaFinal, s.TotalScaledUp, s.TotalScaledDown)
	fmt.Printf("metric: mean=%.2f p95=%.2f\n", s.MetricMean, s.MetricP95)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for metric noise generation")
	runCmd.Flags().Float64Var(&duration, "duration", 600, "Total simulated time (seconds)")
	runCmd.Flags().Float64Var(&timeStep, "time-step", 1, "Simulation tick size (seconds)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Control loop configs
	runCmd.Flags().Float64Var(&syncPeriod, "sync-period", 15, "Interval between scaling commits (seconds)")
	runCmd.Flags().IntVar(&minReplicas, "min-replicas", 1, "Lower replica bound")
	runCmd.Flags().IntVar(&maxReplicas, "max-replicas", 50, "Upper replica bound")
	runCmd.Flags().IntVar(&initialReplicas, "initial-replicas", 3, "Replica count at t=0")
	runCmd.Flags().Float64Var(&target, "target", 100, "Target metric value")

	// Metric source configs
	runCmd.Flags().StringVar(&scenario, "scenario", "sine", "Metric scenario (constant, ramp, sawtooth, sine, spike, square)")
	runCmd.Flags().Float64Var(&metricBase, "metric-base", 100, "Scenario resting metric level")
	runCmd.Flags().Float64Var(&metricAmplitude, "metric-amplitude", 80, "Scenario excursion above/around base")
	runCmd.Flags().Float64Var(&metricPeriod, "metric-period", 300, "Scenario repetition period (seconds)")
	runCmd.Flags().Float64Var(&noiseStdDev, "noise-stddev", 0, "Gaussian metric noise stddev (0 disables)")
	runCmd.Flags().StringVar(&metricExpr, "metric-expr", "", "Custom metric formula of t, e.g. '100 + 50*sin(t/60)' (overrides --scenario)")

	// Behavior configs
	runCmd.Flags().StringVar(&behaviorFile, "behavior", "", "Path to a scaleUp/scaleDown behavior YAML file")
	runCmd.Flags().StringVar(&behaviorTemplate, "template", "default", "Built-in behavior template (see 'hpa-sim templates')")

	// Output configs
	runCmd.Flags().StringVar(&timelineCSV, "timeline-csv", "", "Write per-tick timeline CSV to this path")
	runCmd.Flags().StringVar(&decisionsCSV, "decisions-csv", "", "Write decision log CSV to this path")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
