package core_test

import (
	"testing"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// grid builds a grid from glyph rows.
func grid(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g := core.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			t.Fatalf("row %d has width %d, want %d", y, len(row), g.W)
		}
		for x, r := range row {
			ground, ok := core.ParseGround(r)
			if !ok {
				t.Fatalf("bad glyph %q at (%d,%d)", r, x, y)
			}
			g.Set(core.C(x, y), ground)
		}
	}
	return g
}

func ball(x, y, size int) core.Ball {
	return core.Ball{Size: size, Pos: core.C(x, y)}
}
