package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"segarr/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags] [scenarios.toml]",
	Short: "Run segmented array benchmarks",
	Long:  `Bench fills, sorts, and parallel-scans segmented arrays and reports per-stage timings`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := bench.DefaultConfig()
	if len(args) == 1 {
		loaded, err := bench.LoadConfig(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	heading := fmt.Sprint
	if useColor(cmd, os.Stdout) {
		heading = color.New(color.FgGreen, color.Bold).Sprint
	}

	for _, sc := range cfg.Scenarios {
		rep, err := bench.Run(cmd.Context(), sc)
		if err != nil {
			return err
		}
		fmt.Printf("%s (segment %d, length %d)\n", heading(rep.Name), sc.SegmentSize, sc.Length)
		printStageTimings(os.Stdout, rep)
		if !quiet {
			fmt.Printf("checksum %016x\n", rep.Checksum)
		}
	}
	return nil
}
