package core

import "fmt"

// ValidationError contains details about a rejected layout.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateLayout checks that a parsed board can be turned into a State.
// Checks:
//   - Grid is non-empty and rectangular
//   - At least one ball, every size in 1..maxSize
//   - Balls are on the grid and not on Block
//   - Balls sharing a cell have different sizes
//   - Player is on the grid, not on Block, and not on a ball
func ValidateLayout(g *Grid, balls []Ball, player Coord, maxSize int) error {
	if g == nil || g.W <= 0 || g.H <= 0 {
		return ValidationError{Code: "EMPTY_GRID", Message: "grid has no cells"}
	}
	if len(g.Cells) != g.W*g.H {
		return ValidationError{
			Code:    "RAGGED_GRID",
			Message: fmt.Sprintf("grid is %dx%d but has %d cells", g.W, g.H, len(g.Cells)),
		}
	}

	if err := validateBalls(g, balls, maxSize); err != nil {
		return err
	}

	if !g.InBounds(player) {
		return ValidationError{
			Code:    "PLAYER_OUT_OF_BOUNDS",
			Message: fmt.Sprintf("player at %v is outside %dx%d grid", player, g.W, g.H),
		}
	}
	if g.At(player) == GroundBlock {
		return ValidationError{
			Code:    "PLAYER_ON_BLOCK",
			Message: fmt.Sprintf("player at %v stands on a block", player),
		}
	}
	for i, b := range balls {
		if b.Pos == player {
			return ValidationError{
				Code:    "PLAYER_ON_BALL",
				Message: fmt.Sprintf("player at %v shares a cell with ball %d", player, i),
			}
		}
	}
	return nil
}

// validateBalls checks ball sizes and placement.
func validateBalls(g *Grid, balls []Ball, maxSize int) error {
	if len(balls) == 0 {
		return ValidationError{Code: "NO_BALLS", Message: "layout has no balls"}
	}
	if maxSize < 1 {
		maxSize = DefaultMaxBallSize
	}

	for i, b := range balls {
		if b.Size < 1 || b.Size > maxSize {
			return ValidationError{
				Code:    "BAD_BALL_SIZE",
				Message: fmt.Sprintf("ball %d has size %d, want 1..%d", i, b.Size, maxSize),
			}
		}
		if !g.InBounds(b.Pos) {
			return ValidationError{
				Code:    "BALL_OUT_OF_BOUNDS",
				Message: fmt.Sprintf("ball %d at %v is outside %dx%d grid", i, b.Pos, g.W, g.H),
			}
		}
		if g.At(b.Pos) == GroundBlock {
			return ValidationError{
				Code:    "BALL_ON_BLOCK",
				Message: fmt.Sprintf("ball %d at %v sits on a block", i, b.Pos),
			}
		}
		for j := 0; j < i; j++ {
			if balls[j].Pos == b.Pos && balls[j].Size == b.Size {
				return ValidationError{
					Code:    "BALL_STACK_CONFLICT",
					Message: fmt.Sprintf("balls %d and %d share %v with equal size %d", j, i, b.Pos, b.Size),
				}
			}
		}
	}
	return nil
}

// LayoutStats summarises a board.
type LayoutStats struct {
	Width     int
	Height    int
	Blocks    int
	Snow      int
	Balls     int
	TotalSize int
	Reachable int // Cells the player can walk to at the start
}

// ComputeLayoutStats analyses a state.
func ComputeLayoutStats(s *State) LayoutStats {
	stats := LayoutStats{
		Width:  s.Grid.W,
		Height: s.Grid.H,
		Balls:  len(s.Balls),
	}
	for _, cell := range s.Grid.Cells {
		switch cell {
		case GroundBlock:
			stats.Blocks++
		case GroundSnow:
			stats.Snow++
		}
	}
	for _, b := range s.Balls {
		stats.TotalSize += b.Size
	}
	for _, r := range s.ReachMask() {
		if r {
			stats.Reachable++
		}
	}
	return stats
}
