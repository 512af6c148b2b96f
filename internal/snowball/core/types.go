// Package core provides the game model and solver for the snowball pushing puzzle.
// This package is UI-agnostic and deterministic.
package core

import "fmt"

// Dir represents a push direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// SearchOrder is the order in which the explorer tries directions for each ball.
// It decides which of several equally short solutions is found first.
var SearchOrder = []Dir{DirRight, DirLeft, DirDown, DirUp}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// ParseDir parses a direction as printed by String, its lowercase form,
// or a single letter U/R/D/L.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "Up", "U", "up":
		return DirUp, nil
	case "Right", "R", "right":
		return DirRight, nil
	case "Down", "D", "down":
		return DirDown, nil
	case "Left", "L", "left":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Ground is the static terrain of a cell.
type Ground uint8

const (
	GroundNone Ground = iota
	GroundSnow
	GroundBlock
)

// Glyph returns the level-file character for the ground.
func (g Ground) Glyph() rune {
	switch g {
	case GroundSnow:
		return '_'
	case GroundBlock:
		return '#'
	default:
		return '.'
	}
}

// String returns the name of the ground.
func (g Ground) String() string {
	switch g {
	case GroundNone:
		return "None"
	case GroundSnow:
		return "Snow"
	case GroundBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// ParseGround converts a level glyph to a Ground.
func ParseGround(r rune) (Ground, bool) {
	switch r {
	case '.':
		return GroundNone, true
	case '_':
		return GroundSnow, true
	case '#':
		return GroundBlock, true
	}
	return GroundNone, false
}

// Ball is a pushable snowball.
type Ball struct {
	Size int
	Pos  Coord
}

// DefaultMaxBallSize is the size a ball stops growing at.
const DefaultMaxBallSize = 4

// Action is one recorded push: which ball, in which direction.
type Action struct {
	Ball int
	Dir  Dir
}

// String renders the action as "<ball>\t<dir>".
func (a Action) String() string {
	return fmt.Sprintf("%d\t%s", a.Ball, a.Dir)
}
