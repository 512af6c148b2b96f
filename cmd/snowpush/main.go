// snowpush solves snowball pushing puzzles and replays the solutions in the terminal.
//
// Usage:
//
//	snowpush list                 - List available levels
//	snowpush solve <level>...     - Solve levels and print the pushes
//	snowpush replay <level>       - Animate a solution
//	snowpush history [level]      - Show stored solutions
//	snowpush serve                - Start SSH server for remote replays
//	snowpush export <level>       - Write a level as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: XDG search, then ./configs/snowpush.yaml)
//	--db <path>         - Solutions database path
//	--levels <dir>      - Level directory (default: built-in levels)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snowpush",
	Short: "Snowpush - solve snowball pushing puzzles",
	Long: `Snowpush finds the shortest sequence of pushes that gathers every
snowball of a level on one cell, and replays it in your terminal.

Available commands:
  list     - Show all available levels
  solve    - Solve one or more levels
  replay   - Animate a solution
  history  - View stored solutions
  serve    - Start SSH server for remote replays
  export   - Convert a level to YAML

Examples:
  snowpush list
  snowpush solve reference
  snowpush solve --all
  snowpush replay ./my-level.yaml
  snowpush history reference`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupApp(cmd)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solutions database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}
