package core

import "container/heap"

// pathNode is an entry in the pathfinder's open set.
type pathNode struct {
	pos  Coord
	cost int // steps taken so far
	est  int // cost + Manhattan distance to target
	seq  int // insertion order, breaks ties FIFO
}

type pathQueue []pathNode

func (q pathQueue) Len() int { return len(q) }

func (q pathQueue) Less(i, j int) bool {
	if q[i].est != q[j].est {
		return q[i].est < q[j].est
	}
	return q[i].seq < q[j].seq
}

func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pathQueue) Push(x any) { *q = append(*q, x.(pathNode)) }

func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// CanReach reports whether the player can walk to target through in-bounds,
// non-Block cells that hold no ball. On success the player is moved to target;
// on failure the state is unchanged.
//
// The search is A* with the Manhattan distance as heuristic. Steps have unit
// cost, so the verdict matches a plain breadth-first search. The player's own
// cell is always a valid start.
func (s *State) CanReach(target Coord) bool {
	if s.Player == target {
		return true
	}
	if !s.passable(target) {
		return false
	}

	g := s.Grid
	visited := make([]bool, g.W*g.H)
	open := make(pathQueue, 0, g.W*g.H)
	seq := 0

	push := func(pos Coord, cost int) {
		heap.Push(&open, pathNode{pos: pos, cost: cost, est: cost + pos.Manhattan(target), seq: seq})
		seq++
	}
	push(s.Player, 0)

	for open.Len() > 0 {
		node := heap.Pop(&open).(pathNode)
		pos := node.pos

		if node.cost > 0 {
			if !s.passable(pos) {
				continue
			}
		} else if !g.InBounds(pos) {
			continue
		}
		idx := g.index(pos)
		if visited[idx] {
			continue
		}
		if pos == target {
			s.Player = target
			return true
		}
		visited[idx] = true

		for _, next := range pos.Neighbors() {
			if g.InBounds(next) && !visited[g.index(next)] {
				push(next, node.cost+1)
			}
		}
	}
	return false
}

// passable reports whether the player may step onto c.
func (s *State) passable(c Coord) bool {
	return s.Grid.Walkable(c) && !s.Occupied(c)
}
