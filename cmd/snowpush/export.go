package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export <level>",
	Short: "Write a level as YAML",
	Long: `Convert a level (built-in, by ID, or any supported file such as a
.snow glyph file) to the YAML level format.

Examples:
  snowpush export reference
  snowpush export ./corner.snow -o corner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file (default: stdout)")
}

func runExport(_ *cobra.Command, args []string) {
	lvl, err := current.loader.Resolve(args[0])
	if err != nil {
		fatal("%v", err)
	}

	data, err := lvl.EncodeYAML()
	if err != nil {
		fatal("%v", err)
	}

	if flagExportOut == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		fatal("writing %s: %v", flagExportOut, err)
	}
	current.logger.Info("level exported", "level", lvl.ID, "file", flagExportOut)
}
