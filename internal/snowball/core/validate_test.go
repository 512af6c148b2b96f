package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

func TestValidateLayout(t *testing.T) {
	board := []string{
		"..#",
		"._.",
	}

	tests := []struct {
		name    string
		grid    *core.Grid
		balls   []core.Ball
		player  core.Coord
		maxSize int
		code    string
	}{
		{"valid", nil, []core.Ball{ball(1, 0, 1), ball(1, 1, 2)}, core.C(0, 0), 4, ""},
		{"ball on snow", nil, []core.Ball{ball(1, 1, 1)}, core.C(0, 0), 4, ""},
		{"stacked balls", nil, []core.Ball{ball(1, 0, 1), ball(1, 0, 2)}, core.C(0, 0), 4, ""},
		{"empty grid", core.NewGrid(0, 0), []core.Ball{ball(0, 0, 1)}, core.C(0, 0), 4, "EMPTY_GRID"},
		{"ragged grid", &core.Grid{W: 3, H: 2, Cells: make([]core.Ground, 5)}, []core.Ball{ball(1, 0, 1)}, core.C(0, 0), 4, "RAGGED_GRID"},
		{"no balls", nil, nil, core.C(0, 0), 4, "NO_BALLS"},
		{"zero size", nil, []core.Ball{ball(1, 0, 0)}, core.C(0, 0), 4, "BAD_BALL_SIZE"},
		{"above cap", nil, []core.Ball{ball(1, 0, 5)}, core.C(0, 0), 4, "BAD_BALL_SIZE"},
		{"custom cap", nil, []core.Ball{ball(1, 0, 5)}, core.C(0, 0), 8, ""},
		{"ball outside", nil, []core.Ball{ball(3, 0, 1)}, core.C(0, 0), 4, "BALL_OUT_OF_BOUNDS"},
		{"ball on block", nil, []core.Ball{ball(2, 0, 1)}, core.C(0, 0), 4, "BALL_ON_BLOCK"},
		{"equal stack", nil, []core.Ball{ball(1, 0, 2), ball(1, 0, 2)}, core.C(0, 0), 4, "BALL_STACK_CONFLICT"},
		{"player outside", nil, []core.Ball{ball(1, 0, 1)}, core.C(0, -1), 4, "PLAYER_OUT_OF_BOUNDS"},
		{"player on block", nil, []core.Ball{ball(1, 0, 1)}, core.C(2, 0), 4, "PLAYER_ON_BLOCK"},
		{"player on ball", nil, []core.Ball{ball(1, 0, 1)}, core.C(1, 0), 4, "PLAYER_ON_BALL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.grid
			if g == nil {
				g = grid(t, board...)
			}

			err := core.ValidateLayout(g, tc.balls, tc.player, tc.maxSize)
			if tc.code == "" {
				if err != nil {
					t.Errorf("expected valid layout, got %v", err)
				}
				return
			}

			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("expected code %s, got %s (%s)", tc.code, verr.Code, verr.Message)
			}
		})
	}
}

func TestComputeLayoutStats(t *testing.T) {
	s := core.NewState(grid(t,
		".#_.",
		".#..",
		"_...",
	), []core.Ball{ball(0, 1, 1), ball(3, 0, 2)}, core.C(0, 0))

	stats := core.ComputeLayoutStats(s)
	if stats.Width != 4 || stats.Height != 3 {
		t.Errorf("expected 4x3, got %dx%d", stats.Width, stats.Height)
	}
	if stats.Blocks != 2 {
		t.Errorf("expected 2 blocks, got %d", stats.Blocks)
	}
	if stats.Snow != 2 {
		t.Errorf("expected 2 snow, got %d", stats.Snow)
	}
	if stats.Balls != 2 || stats.TotalSize != 3 {
		t.Errorf("expected 2 balls of total size 3, got %d/%d", stats.Balls, stats.TotalSize)
	}
	// Ball 0 walls the player into the top-left corner.
	if stats.Reachable != 1 {
		t.Errorf("expected 1 reachable cell, got %d", stats.Reachable)
	}
}
