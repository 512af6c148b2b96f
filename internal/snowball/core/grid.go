package core

// Grid is the terrain of the board.
// Cells are stored in row-major order: index = y*W + x.
// Dimensions never change; only Snow turns into None.
type Grid struct {
	W     int      // Width of the grid
	H     int      // Height of the grid
	Cells []Ground // Flat array of cells, length W*H
}

// NewGrid creates a grid of the given dimensions with all cells None.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Ground, w*h),
	}
}

// GridFromRows builds a grid from equal-length rows of ground values.
func GridFromRows(rows [][]Ground) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ground := range row {
			g.Set(C(x, y), ground)
		}
	}
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the ground at c. Out-of-bounds cells read as Block.
func (g *Grid) At(c Coord) Ground {
	if !g.InBounds(c) {
		return GroundBlock
	}
	return g.Cells[g.index(c)]
}

// Set sets the ground at the given coordinate.
func (g *Grid) Set(c Coord, ground Ground) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = ground
	}
}

// Walkable reports whether c is inside the grid and not a Block.
func (g *Grid) Walkable(c Coord) bool {
	return g.At(c) != GroundBlock
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Ground, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// SnowCount returns the number of unconsumed snow cells.
func (g *Grid) SnowCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell == GroundSnow {
			count++
		}
	}
	return count
}
