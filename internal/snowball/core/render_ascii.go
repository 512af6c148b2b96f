package core

import (
	"strconv"
	"strings"
)

// RenderASCII renders the board followed by the action log.
// Used for the CLI output and golden tests.
//
// Format, two characters per cell:
//   - 'A' where the player stands, otherwise the summed ball size ('+' above 9) or ' '
//   - the terrain glyph ('.', '_', '#')
//
// then one "<ball>\t<dir>" line per recorded push.
func RenderASCII(s *State) string {
	var sb strings.Builder
	sb.WriteString(RenderBoard(s))
	sb.WriteString(FormatActions(s.Actions))
	return sb.String()
}

// RenderBoard renders just the board without the action log.
func RenderBoard(s *State) string {
	var sb strings.Builder
	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			c := C(x, y)
			switch sum := s.SizeAt(c); {
			case c == s.Player:
				sb.WriteByte('A')
			case sum != 0:
				sb.WriteString(SizeGlyph(sum))
			default:
				sb.WriteByte(' ')
			}
			sb.WriteRune(s.Grid.At(c).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SizeGlyph returns the one-character occupant glyph for a summed ball size.
// Sums above 9 render as '+' so every cell stays two characters wide.
func SizeGlyph(sum int) string {
	if sum > 9 {
		return "+"
	}
	return strconv.Itoa(sum)
}

// RenderGround renders the terrain only, one glyph per cell.
func RenderGround(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.At(C(x, y)).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
