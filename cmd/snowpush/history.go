package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowpush/internal/platform/tui"
	"github.com/vovakirdan/snowpush/internal/storage"
)

var (
	flagHistoryInteractive bool
	flagHistoryLimit       int
	flagHistoryClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show stored solutions",
	Long: `Without a level, lists every solved level with its best push count.
With a level ID, lists the stored solutions of that level, shortest first.

Examples:
  snowpush history
  snowpush history reference
  snowpush history --interactive
  snowpush history reference --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse solutions in a table view")
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Maximum solutions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the stored solutions of the level (all levels if none is given)")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := current.openStore()
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	switch {
	case flagHistoryClear:
		if err := store.ClearSolutions(levelID); err != nil {
			store.Close()
			fatal("clearing solutions: %v", err)
		}
		fmt.Println("Solutions cleared.")
	case flagHistoryInteractive:
		width, height := terminalSize()
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fatal("running history browser: %v", err)
		}
	case levelID != "":
		printSolutions(store, levelID)
	default:
		printSummaries(store)
	}
}

func printSummaries(store *storage.Store) {
	sums, err := store.SolvedLevels()
	if err != nil {
		store.Close()
		fatal("retrieving solutions: %v", err)
	}

	if len(sums) == 0 {
		fmt.Println("No solutions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snowpush solve <level>' to find one!")
		return
	}

	fmt.Printf("  %-16s  %-4s  %-6s  %s\n", "Level", "Runs", "Best", "Last solved")
	fmt.Printf("  %-16s  %-4s  %-6s  %s\n", "-----", "----", "----", "-----------")
	for _, s := range sums {
		fmt.Printf("  %-16s  %-4d  %-6d  %s\n", s.LevelID, s.Runs, s.BestPushes, s.LastSolved.Format("2006-01-02 15:04"))
	}
}

func printSolutions(store *storage.Store, levelID string) {
	sols, err := store.Solutions(levelID, flagHistoryLimit)
	if err != nil {
		store.Close()
		fatal("retrieving solutions: %v", err)
	}

	fmt.Printf("Solutions - %s\n", levelID)
	fmt.Println()

	if len(sols) == 0 {
		fmt.Println("No solutions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'snowpush solve %s' to find one!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-10s  %-12s  %s\n", "Rank", "Pushes", "Expanded", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-12s  %s\n", "----", "------", "--------", "----", "----")

	for i, s := range sols {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-10d  %-12s  %s\n", i+1, s.Pushes(), s.Expanded, s.Elapsed, dateStr)
	}

	// Show best
	fmt.Println()
	if best, err := store.BestSolution(levelID); err == nil {
		fmt.Printf("Best: %d pushes\n", best.Pushes())
	} else if !errors.Is(err, storage.ErrNoSolution) {
		current.logger.Warn("could not load best solution", "error", err)
	}
}
