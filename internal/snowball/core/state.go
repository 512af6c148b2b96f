package core

// State is one node of the puzzle: terrain, balls, player and the pushes that led here.
// States are cloned before every branch; nothing is shared between clones.
type State struct {
	Grid    *Grid    // Terrain; snow is consumed as balls land on it
	Balls   []Ball   // Ball index is the ball's identity
	Player  Coord    // Player position
	Actions []Action // Pushes applied since the initial state
	MaxSize int      // Balls stop doubling at this size
}

// NewState creates the initial state. Inputs are copied.
// The layout must already have passed ValidateLayout.
func NewState(grid *Grid, balls []Ball, player Coord) *State {
	return NewStateWithMaxSize(grid, balls, player, DefaultMaxBallSize)
}

// NewStateWithMaxSize creates the initial state with a custom size cap.
func NewStateWithMaxSize(grid *Grid, balls []Ball, player Coord, maxSize int) *State {
	if maxSize < 1 {
		maxSize = DefaultMaxBallSize
	}
	return &State{
		Grid:    grid.Clone(),
		Balls:   cloneBalls(balls),
		Player:  player,
		Actions: make([]Action, 0),
		MaxSize: maxSize,
	}
}

func cloneBalls(balls []Ball) []Ball {
	out := make([]Ball, len(balls))
	copy(out, balls)
	return out
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	actions := make([]Action, len(s.Actions))
	copy(actions, s.Actions)
	return &State{
		Grid:    s.Grid.Clone(),
		Balls:   cloneBalls(s.Balls),
		Player:  s.Player,
		Actions: actions,
		MaxSize: s.MaxSize,
	}
}

// Occupied returns true if any ball sits on c.
func (s *State) Occupied(c Coord) bool {
	for _, b := range s.Balls {
		if b.Pos == c {
			return true
		}
	}
	return false
}

// BallsAt returns the indices of all balls on c, in list order.
func (s *State) BallsAt(c Coord) []int {
	indices := make([]int, 0)
	for i, b := range s.Balls {
		if b.Pos == c {
			indices = append(indices, i)
		}
	}
	return indices
}

// SizeAt returns the summed size of the balls on c.
func (s *State) SizeAt(c Coord) int {
	sum := 0
	for _, b := range s.Balls {
		if b.Pos == c {
			sum += b.Size
		}
	}
	return sum
}

// Solved returns true if every ball shares the first ball's position.
func (s *State) Solved() bool {
	if len(s.Balls) == 0 {
		return false
	}
	first := s.Balls[0].Pos
	for _, b := range s.Balls[1:] {
		if b.Pos != first {
			return false
		}
	}
	return true
}

// Pushes returns the number of pushes recorded so far.
func (s *State) Pushes() int {
	return len(s.Actions)
}
