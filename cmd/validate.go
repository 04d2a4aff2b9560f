package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inference-sim/mlfq-sim/sim"
	"github.com/inference-sim/mlfq-sim/sim/workload"
)

// validateCmd replays a script without printing the trace.
var validateCmd = &cobra.Command{
	Use:   "validate <input_file>",
	Short: "Check that a script replays without errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		s, err := sim.NewSimulator(cfg, reader, nil)
		if err != nil {
			return err
		}
		if err := s.Run(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d instructions, %d ticks (last tick %d)\n",
			s.Consumed(), s.Metrics.Ticks, s.Metrics.SimEndedTick)
		return nil
	},
}
