package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/mlfq-sim/sim"
	"github.com/inference-sim/mlfq-sim/sim/observe"
	"github.com/inference-sim/mlfq-sim/sim/trace"
	"github.com/inference-sim/mlfq-sim/sim/workload"
)

var (
	logLevel        string // Log verbosity level
	configPath      string // Optional YAML overriding the default MLFQ parameters
	csvPath         string // Optional CSV record log
	traceLevel      string // Records kept in the CSV log: output or decisions
	metricsPath     string // Optional Prometheus text-format metrics file
	printSummary    bool   // Print run metrics to stderr after the trace
	horizon         int64  // Last tick allowed to run (0 = unlimited)
	maxTasks        int    // Task ids are 1..max-tasks
	checkInvariants bool   // Verify queue invariants after every tick
)

// rootCmd runs a simulation over the script given as its only argument.
var rootCmd = &cobra.Command{
	Use:   "mlfq-sim <input_file>",
	Short: "Discrete-event simulator for a three-level MLFQ CPU scheduler",
	Long: `Replays a script of task events (event_tick,task_id,burst_time) against a
three-level multi-level feedback queue with quanta 2/4/8 and a boost every
25 ticks, printing one trace line per scheduling event.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulation,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	// arguments are valid from here on; runtime failures should not print usage
	cmd.SilenceUsage = true
	if err := setupLogging(); err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	reader, err := workload.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	text := trace.NewTextRecorder(cmd.OutOrStdout())
	recorders := []trace.Recorder{text}

	var csvRec *trace.CSVRecorder
	if csvPath != "" {
		csvRec, err = trace.CreateCSVRecorder(csvPath, trace.TraceLevel(traceLevel))
		if err != nil {
			return err
		}
		recorders = append(recorders, csvRec)
	}
	var collector *observe.Collector
	if metricsPath != "" {
		collector = observe.NewCollector()
		recorders = append(recorders, collector)
	}
	var summaryTrace *trace.SimulationTrace
	if printSummary {
		summaryTrace = trace.NewSimulationTrace()
		recorders = append(recorders, summaryTrace)
	}

	s, err := sim.NewSimulator(cfg, reader, trace.Multi(recorders...))
	if err != nil {
		return err
	}
	runErr := s.Run()

	// the partial trace is still written when the run fails
	if err := text.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("writing trace: %w", err)
	}
	if csvRec != nil {
		if err := csvRec.Close(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return runErr
	}

	if collector != nil {
		if err := collector.WriteTextfile(metricsPath); err != nil {
			return err
		}
		logrus.Infof("Metrics written to %s", metricsPath)
	}
	if printSummary {
		s.Metrics.Print(cmd.ErrOrStderr())
		trace.Summarize(summaryTrace).Print(cmd.ErrOrStderr())
	}
	logrus.Info("Simulation complete.")
	return nil
}

func setupLogging() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logrus.SetLevel(level)
	return nil
}

// resolveConfig layers defaults, the --config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (sim.SimConfig, error) {
	if !trace.IsValidTraceLevel(traceLevel) {
		return sim.SimConfig{}, fmt.Errorf("unknown trace level %q (valid: output, decisions)", traceLevel)
	}
	cfg, err := loadSimConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("max-tasks") {
		cfg.MaxTasks = maxTasks
	}
	if checkInvariants {
		cfg.CheckInvariants = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	logrus.Debugf("Resolved configuration: %+v", cfg)
	return cfg, nil
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultSimConfig()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding quantums, boost interval, max tasks, start tick")
	rootCmd.PersistentFlags().Int64Var(&horizon, "horizon", defaults.Horizon, "Last tick allowed to run (0 = unlimited)")
	rootCmd.PersistentFlags().IntVar(&maxTasks, "max-tasks", defaults.MaxTasks, "Highest valid task id")
	rootCmd.PersistentFlags().BoolVar(&checkInvariants, "check-invariants", false, "Verify queue and running-slot invariants after every tick")

	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Write every trace record to this CSV file")
	rootCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelOutput), "Records kept in the CSV file (output, decisions)")
	rootCmd.Flags().StringVar(&metricsPath, "metrics-file", "", "Write Prometheus text-format run metrics to this file")
	rootCmd.Flags().BoolVar(&printSummary, "summary", false, "Print run metrics to stderr after the trace")

	rootCmd.AddCommand(validateCmd)
}
