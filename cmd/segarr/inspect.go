package main

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"segarr/segmented"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags]",
	Short: "Show the geometry of a segmented array",
	Long:  `Inspect prints segment layout and sample index decompositions for a given segment size and length`,
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Int64("segment-size", 4096, "segment size (power of two > 1)")
	inspectCmd.Flags().Int64("length", 0, "total element count")
	inspectCmd.Flags().IntSlice("index", nil, "logical indexes to decompose")
}

func runInspect(cmd *cobra.Command, args []string) error {
	segSize64, err := cmd.Flags().GetInt64("segment-size")
	if err != nil {
		return fmt.Errorf("failed to get segment-size flag: %w", err)
	}
	length64, err := cmd.Flags().GetInt64("length")
	if err != nil {
		return fmt.Errorf("failed to get length flag: %w", err)
	}
	indexes, err := cmd.Flags().GetIntSlice("index")
	if err != nil {
		return fmt.Errorf("failed to get index flag: %w", err)
	}

	segSize, err := safecast.Conv[int](segSize64)
	if err != nil {
		return fmt.Errorf("segment-size out of range: %w", err)
	}
	length, err := safecast.Conv[int](length64)
	if err != nil {
		return fmt.Errorf("length out of range: %w", err)
	}

	arr, err := segmented.New[byte](segSize, length)
	if err != nil {
		return err
	}

	heading := fmt.Sprint
	if useColor(cmd, os.Stdout) {
		heading = color.New(color.FgCyan, color.Bold).Sprint
	}

	fmt.Printf("%s\n", heading("geometry"))
	fmt.Printf("  segment size: %d\n", arr.SegmentSize())
	fmt.Printf("  length:       %d\n", arr.Len())
	fmt.Printf("  segments:     %d\n", arr.SegmentCount())
	if arr.SegmentCount() > 0 {
		last := arr.Len() - (arr.SegmentCount()-1)*arr.SegmentSize()
		fmt.Printf("  last segment: %d elements\n", last)
	}

	if len(indexes) > 0 {
		fmt.Printf("%s\n", heading("indexes"))
		for _, i := range indexes {
			if i < 0 || i >= arr.Len() {
				fmt.Printf("  %d: out of range\n", i)
				continue
			}
			seg, off := arr.Locate(i)
			fmt.Printf("  %d: segment %d, offset %d\n", i, seg, off)
		}
	}
	return nil
}
