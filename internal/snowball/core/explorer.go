package core

import "errors"

// ErrUnsolvable is returned when every reachable state has been explored
// without finding one where all balls share a cell.
var ErrUnsolvable = errors.New("no solution")

// Stats describes the work done by one search.
type Stats struct {
	Expanded    int // States whose successors were generated
	Duplicates  int // Dequeued states skipped as already visited
	Generated   int // Successful pushes enqueued
	MaxFrontier int // Largest frontier size observed
}

// Result is the outcome of a successful search.
type Result struct {
	State *State // Terminal state; State.Actions is the solution
	Stats Stats
}

// ProgressFunc receives a snapshot of the search statistics.
type ProgressFunc func(Stats)

// Explorer runs a breadth-first search over push sequences.
type Explorer struct {
	order         []Dir
	progressEvery int
	progress      ProgressFunc
}

// ExplorerOption configures an Explorer.
type ExplorerOption func(*Explorer)

// WithOrder overrides the direction order tried for each ball.
func WithOrder(order ...Dir) ExplorerOption {
	return func(e *Explorer) {
		if len(order) > 0 {
			e.order = append([]Dir(nil), order...)
		}
	}
}

// WithProgress calls fn every `every` expanded states.
func WithProgress(every int, fn ProgressFunc) ExplorerOption {
	return func(e *Explorer) {
		e.progressEvery = every
		e.progress = fn
	}
}

// NewExplorer creates an explorer using a copy of SearchOrder taken now.
func NewExplorer(opts ...ExplorerOption) *Explorer {
	e := &Explorer{order: append([]Dir(nil), SearchOrder...)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve searches from initial and returns the first solved state dequeued.
// Every transition adds exactly one push and the frontier is FIFO, so the
// result uses the fewest pushes among the solutions the search can see.
// The initial state is never modified.
func (e *Explorer) Solve(initial *State) (Result, error) {
	var stats Stats
	visited := make(map[string]struct{})
	queue := []*State{initial.Clone()}
	head := 0

	for head < len(queue) {
		state := queue[head]
		queue[head] = nil
		head++

		if state.Solved() {
			return Result{State: state, Stats: stats}, nil
		}

		key := state.Fingerprint()
		if _, seen := visited[key]; seen {
			stats.Duplicates++
			continue
		}
		visited[key] = struct{}{}

		for idx := range state.Balls {
			for _, dir := range e.order {
				next := state.Clone()
				if next.StepBall(idx, dir) {
					queue = append(queue, next)
					stats.Generated++
				}
			}
		}
		stats.Expanded++

		if frontier := len(queue) - head; frontier > stats.MaxFrontier {
			stats.MaxFrontier = frontier
		}
		if e.progress != nil && e.progressEvery > 0 && stats.Expanded%e.progressEvery == 0 {
			e.progress(stats)
		}

		// Drop the consumed prefix once it dominates the backing array.
		if head > 1024 && head > len(queue)/2 {
			queue = append([]*State(nil), queue[head:]...)
			head = 0
		}
	}
	return Result{Stats: stats}, ErrUnsolvable
}

// Solve searches with the default explorer.
func Solve(initial *State) (*State, error) {
	res, err := NewExplorer().Solve(initial)
	if err != nil {
		return nil, err
	}
	return res.State, nil
}
