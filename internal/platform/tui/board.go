package tui

import (
	"strings"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// RenderBoard renders a state with theme colors. The layout matches
// core.RenderBoard: two characters per cell, occupant then terrain.
func RenderBoard(s *core.State, theme Theme) string {
	var sb strings.Builder
	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			c := core.C(x, y)
			sb.WriteString(renderOccupant(s, c, theme))
			sb.WriteString(renderGround(s.Grid.At(c), theme))
		}
		if y < s.Grid.H-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderOccupant(s *core.State, c core.Coord, theme Theme) string {
	if c == s.Player {
		return theme.Player.Render("A")
	}
	switch n := len(s.BallsAt(c)); n {
	case 0:
		return " "
	case 1:
		return theme.Ball.Render(core.SizeGlyph(s.SizeAt(c)))
	default:
		return theme.Stack.Render(core.SizeGlyph(s.SizeAt(c)))
	}
}

func renderGround(g core.Ground, theme Theme) string {
	glyph := string(g.Glyph())
	switch g {
	case core.GroundSnow:
		return theme.Snow.Render(glyph)
	case core.GroundBlock:
		return theme.Block.Render(glyph)
	default:
		return theme.Ground.Render(glyph)
	}
}
