package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowpush/internal/platform/tui"
	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

var (
	flagListInteractive bool
	flagListIDs         bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows every level found in the level directory (or the built-in levels).

With --interactive, opens a level picker: Enter solves and replays the
selected level, O replays its best stored solution.
With --ids, prints only the level IDs, one per line.`,
	Run: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListInteractive, "interactive", "i", false, "Pick a level interactively and replay it")
	listCmd.Flags().BoolVar(&flagListIDs, "ids", false, "Print level IDs only")
}

func runList(_ *cobra.Command, _ []string) {
	if flagListIDs {
		ids, err := current.loader.ListIDs()
		if err != nil {
			fatal("loading levels: %v", err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	lvls, err := current.loader.LoadAll()
	if err != nil {
		fatal("loading levels: %v", err)
	}

	if flagListInteractive {
		runPicker()
		return
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-5s  %-4s  %s\n", maxIDLen, "ID", "Size", "Balls", "Snow", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %-4s  %s\n", maxIDLen, "--", "----", "-----", "----", "----")

	for _, lvl := range lvls {
		s := core.NewState(lvl.Ground, lvl.Balls, lvl.Player)
		stats := core.ComputeLayoutStats(s)
		size := fmt.Sprintf("%dx%d", stats.Width, stats.Height)
		fmt.Printf("  %-*s  %-7s  %-5d  %-4d  %s\n", maxIDLen, lvl.ID, size, stats.Balls, stats.Snow, lvl.Title())
	}

	fmt.Println()
	fmt.Println("Run 'snowpush solve <id>' to solve a level.")
}

// runPicker lets the user pick a level, then solves and replays it.
func runPicker() {
	store, err := current.openStore()
	if err != nil {
		current.logger.Warn("continuing without solution history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}
	r := current.newRunner(store)

	width, height := terminalSize()
	sel, err := tui.RunLevelPicker(tui.PickerEntries(current.loader, r), width, height)
	if err != nil {
		fatal("running level picker: %v", err)
	}
	if sel == nil {
		return
	}

	if err := replayLevel(r, sel.Level, sel.Stored, false); err != nil {
		fatal("%v", err)
	}
}
