package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels"
	"github.com/vovakirdan/snowpush/internal/storage"
)

var (
	flagSolveAll  bool
	flagNoSave    bool
	flagSolveJobs int
)

var solveCmd = &cobra.Command{
	Use:   "solve [level]...",
	Short: "Solve levels and print the pushes",
	Long: `Search for the shortest push sequence of each level and print the
final board followed by one "<ball>\t<direction>" line per push.

A level is either a level ID or the path of a level file.
Solutions are saved to the solutions database unless --no-save is given.
Levels are solved concurrently with --jobs; each search is single-threaded.

Examples:
  snowpush solve reference
  snowpush solve ./levels/hard.snow
  snowpush solve --all --jobs 4`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveAll, "all", false, "Solve every available level")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store solutions")
	solveCmd.Flags().IntVarP(&flagSolveJobs, "jobs", "j", 2, "Levels solved at the same time")
}

func runSolve(_ *cobra.Command, args []string) {
	lvls, err := selectLevels(args, flagSolveAll)
	if err != nil {
		fatal("%v", err)
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = current.openStore()
		if err != nil {
			fatal("%v", err)
		}
		defer store.Close()
	}

	ctx, stop := interruptContext(context.Background(), current.logger)
	defer stop()

	outcomes, err := current.newRunner(store).SolveAll(ctx, lvls, flagSolveJobs)
	if err != nil {
		current.logger.Warn("interrupted", "error", err)
	}

	failed := 0
	for i, out := range outcomes {
		if i > 0 {
			fmt.Println()
		}
		if len(outcomes) > 1 {
			fmt.Printf("== %s ==\n", out.Level.Title())
		}

		switch {
		case out.Solved():
			fmt.Print(core.RenderASCII(out.Final))
			fmt.Printf("pushes: %d  snow left: %d  expanded: %d  duplicates: %d  time: %s\n",
				out.Final.Pushes(), out.Final.Grid.SnowCount(), out.Stats.Expanded, out.Stats.Duplicates, out.Elapsed)
		case errors.Is(out.Err, core.ErrUnsolvable):
			failed++
			fmt.Println("no solution")
		default:
			failed++
			fmt.Printf("error: %v\n", out.Err)
		}
	}

	if failed > 0 {
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// selectLevels resolves positional level refs, or loads every level with all.
func selectLevels(args []string, all bool) ([]levels.Level, error) {
	if all {
		if len(args) > 0 {
			return nil, errors.New("--all takes no level arguments")
		}
		lvls, err := current.loader.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("loading levels: %w", err)
		}
		if len(lvls) == 0 {
			return nil, errors.New("no levels available")
		}
		return lvls, nil
	}

	if len(args) == 0 {
		return nil, errors.New("name at least one level, or use --all")
	}
	lvls := make([]levels.Level, 0, len(args))
	for _, ref := range args {
		lvl, err := current.loader.Resolve(ref)
		if err != nil {
			if errors.Is(err, levels.ErrLevelNotFound) {
				return nil, fmt.Errorf("%w\nRun 'snowpush list' to see available levels", err)
			}
			return nil, err
		}
		lvls = append(lvls, lvl)
	}
	return lvls, nil
}
