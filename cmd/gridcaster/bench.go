package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/simulation"
)

var flagBenchFrames int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Render a scripted walk headlessly with each caster",
	Long: `Plays the same scripted walk once with the DDA caster and once with the step
caster, rendering every frame off screen, and reports frames per second.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	bindWorldFlags(benchCmd)
	benchCmd.Flags().IntVar(&flagBenchFrames, "frames", simulation.DefaultScript.Frames(), "Frames per caster")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	kinds := []raycast.Kind{raycast.KindDDA, raycast.KindStep}
	if cmd.Flags().Changed("caster") {
		kinds = []raycast.Kind{cfg.Caster.Kind}
	}
	results, err := simulation.Compare(cfg, kinds, simulation.DefaultScript, flagBenchFrames, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s  %8s  %10s  %8s\n", "Caster", "Frames", "Elapsed", "FPS")
	for _, r := range results {
		fmt.Fprintf(out, "%-6s  %8d  %10s  %8.1f\n", r.Caster, r.Frames, r.Elapsed.Round(1e6), r.FPS())
	}
	return nil
}
