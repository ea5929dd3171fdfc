package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"segarr/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "segarr",
	Short: "Segmented array toolkit",
	Long:  `segarr inspects and benchmarks fixed-size segmented arrays`,
}

// main registers subcommands and persistent flags, then executes the root
// command. Command errors exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
