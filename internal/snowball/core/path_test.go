package core_test

import (
	"testing"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// bfsReachable is a plain breadth-first reference for CanReach.
func bfsReachable(s *core.State, target core.Coord) bool {
	seen := map[core.Coord]bool{s.Player: true}
	queue := []core.Coord{s.Player}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == target {
			return true
		}
		for _, n := range c.Neighbors() {
			if seen[n] || !s.Grid.Walkable(n) || s.Occupied(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

func TestCanReachMatchesBFS(t *testing.T) {
	g := grid(t,
		".....#....",
		".###.#.##.",
		".#...#..#.",
		".#.###..#.",
		"...#....#_",
		"##.#.##.#.",
		"...._....#",
	)
	balls := []core.Ball{ball(4, 4, 2), ball(7, 2, 1), ball(9, 3, 4)}
	start := core.C(0, 0)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			target := core.C(x, y)
			s := core.NewState(g, balls, start)
			want := bfsReachable(s, target)

			got := s.CanReach(target)
			if got != want {
				t.Errorf("CanReach(%v) = %v, BFS says %v", target, got, want)
			}
			if got && s.Player != target {
				t.Errorf("CanReach(%v) succeeded but player is at %v", target, s.Player)
			}
			if !got && s.Player != start {
				t.Errorf("CanReach(%v) failed but player moved to %v", target, s.Player)
			}
		}
	}
}

func TestCanReachOutOfBounds(t *testing.T) {
	s := core.NewState(grid(t, "..", ".."), []core.Ball{ball(1, 1, 1)}, core.C(0, 0))

	for _, target := range []core.Coord{core.C(-1, 0), core.C(2, 0), core.C(0, 5)} {
		if s.CanReach(target) {
			t.Errorf("CanReach(%v): expected false", target)
		}
	}
}

func TestCanReachOwnCell(t *testing.T) {
	s := core.NewState(grid(t, "..."), []core.Ball{ball(2, 0, 1)}, core.C(0, 0))

	if !s.CanReach(core.C(0, 0)) {
		t.Error("player should always reach its own cell")
	}
}

func TestCanReachBallCell(t *testing.T) {
	s := core.NewState(grid(t, "..."), []core.Ball{ball(1, 0, 1)}, core.C(0, 0))

	if s.CanReach(core.C(1, 0)) {
		t.Error("player should not walk onto a ball")
	}
	if s.CanReach(core.C(2, 0)) {
		t.Error("player should not walk through a ball")
	}
}
