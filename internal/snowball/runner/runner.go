// Package runner ties a level, the explorer and the solution store together.
// It is shared by the CLI commands and the SSH sessions.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels"
	"github.com/vovakirdan/snowpush/internal/storage"
)

// Runner solves levels.
type Runner struct {
	MaxSize       int            // Ball size cap; < 1 means core.DefaultMaxBallSize
	ProgressEvery int            // Log every N expanded states; 0 disables
	Store         *storage.Store // Optional; solutions are saved when set
	Logger        *log.Logger    // Optional
}

// Outcome is the result of solving one level.
type Outcome struct {
	Level   levels.Level
	Initial *core.State
	Final   *core.State // nil unless solved
	Stats   core.Stats
	Elapsed time.Duration
	Stored  bool  // Final came from the store rather than a search
	Err     error // Per-level failure, e.g. core.ErrUnsolvable
}

// Solved reports whether the outcome carries a solution.
func (o Outcome) Solved() bool {
	return o.Err == nil && o.Final != nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

func (r *Runner) maxSize() int {
	if r.MaxSize < 1 {
		return core.DefaultMaxBallSize
	}
	return r.MaxSize
}

// Solve runs a breadth-first search on the level and saves the result.
// A failed save is logged, not returned.
func (r *Runner) Solve(lvl levels.Level) (Outcome, error) {
	out := Outcome{Level: lvl}
	logger := r.logger().With("level", lvl.ID)

	initial, err := lvl.NewState(r.maxSize())
	if err != nil {
		return out, err
	}
	out.Initial = initial

	var opts []core.ExplorerOption
	if r.ProgressEvery > 0 {
		opts = append(opts, core.WithProgress(r.ProgressEvery, func(s core.Stats) {
			logger.Info("searching", "expanded", s.Expanded, "frontier", s.MaxFrontier, "duplicates", s.Duplicates)
		}))
	}

	logger.Debug("solving", "balls", len(initial.Balls), "size", fmt.Sprintf("%dx%d", initial.Grid.W, initial.Grid.H))
	start := time.Now()
	res, err := core.NewExplorer(opts...).Solve(initial)
	out.Elapsed = time.Since(start)
	out.Stats = res.Stats
	if err != nil {
		logger.Warn("no solution", "expanded", res.Stats.Expanded, "elapsed", out.Elapsed)
		return out, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	out.Final = res.State
	logger.Info("solved", "pushes", res.State.Pushes(), "expanded", res.Stats.Expanded, "elapsed", out.Elapsed)

	if r.Store != nil {
		_, err := r.Store.SaveSolution(storage.Solution{
			LevelID:    lvl.ID,
			Actions:    res.State.Actions,
			Expanded:   res.Stats.Expanded,
			Duplicates: res.Stats.Duplicates,
			Elapsed:    out.Elapsed,
		})
		if err != nil {
			logger.Warn("could not save solution", "error", err)
		}
	}
	return out, nil
}

// SolveAll solves levels concurrently, at most limit at a time (limit < 1
// means no limit). Each search stays single-threaded. Per-level failures are
// reported in Outcome.Err; the returned error is only set when ctx ends first.
func (r *Runner) SolveAll(ctx context.Context, lvls []levels.Level, limit int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(lvls))
	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, lvl := range lvls {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				outcomes[i] = Outcome{Level: lvl, Err: err}
				return err
			}
			out, err := r.Solve(lvl)
			out.Err = err
			outcomes[i] = out
			return nil
		})
	}

	return outcomes, g.Wait()
}

// Stored replays the best stored solution of the level.
func (r *Runner) Stored(lvl levels.Level) (Outcome, error) {
	out := Outcome{Level: lvl, Stored: true}
	if r.Store == nil {
		return out, errors.New("no solution store configured")
	}

	initial, err := lvl.NewState(r.maxSize())
	if err != nil {
		return out, err
	}
	out.Initial = initial

	sol, err := r.Store.BestSolution(lvl.ID)
	if err != nil {
		return out, err
	}
	final, err := core.Replay(initial, sol.Actions)
	if err != nil {
		return out, fmt.Errorf("stored solution %d for level %s: %w", sol.ID, lvl.ID, err)
	}
	out.Final = final
	out.Elapsed = sol.Elapsed
	out.Stats = core.Stats{Expanded: sol.Expanded, Duplicates: sol.Duplicates}
	return out, nil
}
