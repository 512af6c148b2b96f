package core

// AttemptPush moves ball idx one cell in dir if the rules allow it.
// The player's position is not checked here; see StepBall.
// Returns false and leaves the state untouched when the push is illegal:
//   - the target is off the grid or a Block
//   - another ball on the target is not strictly larger
//   - a smaller ball rests on top of the pushed one
func (s *State) AttemptPush(idx int, dir Dir) bool {
	if idx < 0 || idx >= len(s.Balls) {
		return false
	}
	this := s.Balls[idx]
	from := this.Pos
	to := from.Step(dir)

	if !s.Grid.Walkable(to) {
		return false
	}

	for i, b := range s.Balls {
		if i == idx {
			continue
		}
		if b.Pos == to && b.Size <= this.Size {
			return false
		}
		if b.Pos == from && b.Size < this.Size {
			return false
		}
	}

	s.Balls[idx].Pos = to
	if s.Grid.At(to) == GroundSnow {
		s.Balls[idx].Size = grow(this.Size, s.MaxSize)
		s.Grid.Set(to, GroundNone)
	}

	if !s.Occupied(from) {
		s.Player = from
	}
	return true
}

func grow(size, maxSize int) int {
	if size >= maxSize {
		return size
	}
	size *= 2
	if size > maxSize {
		size = maxSize
	}
	return size
}

// StepBall walks the player to the cell behind ball idx and pushes it in dir.
// On success the push is appended to Actions.
//
// If the walk succeeds but the push is illegal, the player stays on the
// staging cell and false is returned. Callers work on clones, so the
// half-applied state is simply discarded.
func (s *State) StepBall(idx int, dir Dir) bool {
	if idx < 0 || idx >= len(s.Balls) {
		return false
	}
	staging := s.Balls[idx].Pos.Step(dir.Opposite())
	if !s.CanReach(staging) {
		return false
	}
	if !s.AttemptPush(idx, dir) {
		return false
	}
	s.Actions = append(s.Actions, Action{Ball: idx, Dir: dir})
	return true
}
