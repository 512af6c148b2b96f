package core_test

import (
	"testing"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

func TestAttemptPushMovesBallAndPullsPlayer(t *testing.T) {
	s := core.NewState(grid(t, "...."), []core.Ball{ball(1, 0, 1)}, core.C(0, 0))

	if !s.AttemptPush(0, core.DirRight) {
		t.Fatal("expected push to succeed")
	}
	if s.Balls[0].Pos != core.C(2, 0) {
		t.Errorf("expected ball at (2,0), got %v", s.Balls[0].Pos)
	}
	if s.Player != core.C(1, 0) {
		t.Errorf("expected player pulled to (1,0), got %v", s.Player)
	}
}

func TestAttemptPushRejectedWithoutMutation(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		balls []core.Ball
		idx   int
		dir   core.Dir
	}{
		{"into block", []string{"..#"}, []core.Ball{ball(1, 0, 1)}, 0, core.DirRight},
		{"off the right edge", []string{".."}, []core.Ball{ball(1, 0, 1)}, 0, core.DirRight},
		{"off the top edge", []string{".."}, []core.Ball{ball(1, 0, 1)}, 0, core.DirUp},
		{"onto equal ball", []string{"..."}, []core.Ball{ball(0, 0, 1), ball(1, 0, 1)}, 0, core.DirRight},
		{"onto smaller ball", []string{"..."}, []core.Ball{ball(0, 0, 2), ball(1, 0, 1)}, 0, core.DirRight},
		{"from under smaller ball", []string{"..."}, []core.Ball{ball(1, 0, 4), ball(1, 0, 2)}, 0, core.DirRight},
		{"bad index", []string{"..."}, []core.Ball{ball(1, 0, 1)}, 3, core.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewState(grid(t, tc.rows...), tc.balls, core.C(0, 0))
			before := core.RenderBoard(s)

			if s.AttemptPush(tc.idx, tc.dir) {
				t.Fatal("expected push to fail")
			}
			if after := core.RenderBoard(s); after != before {
				t.Errorf("state changed on failed push:\nbefore:\n%s\nafter:\n%s", before, after)
			}
			if s.Player != core.C(0, 0) {
				t.Errorf("player moved to %v", s.Player)
			}
		})
	}
}

func TestAttemptPushUnderLargerBall(t *testing.T) {
	s := core.NewState(grid(t, "..."), []core.Ball{ball(0, 0, 1), ball(1, 0, 2)}, core.C(2, 0))

	if !s.AttemptPush(0, core.DirRight) {
		t.Fatal("expected small ball to slide under larger one")
	}
	if s.Balls[0].Pos != s.Balls[1].Pos {
		t.Errorf("expected balls to share a cell, got %v and %v", s.Balls[0].Pos, s.Balls[1].Pos)
	}
	if s.Player != core.C(0, 0) {
		t.Errorf("expected player at vacated (0,0), got %v", s.Player)
	}
	if !s.Solved() {
		t.Error("expected state to be solved")
	}
}

func TestAttemptPushTopBallLeavesPlayer(t *testing.T) {
	// Small ball rests on a large one; pushing the small one off keeps the
	// large one in place, so the player is not pulled onto that cell.
	s := core.NewState(grid(t, "...."), []core.Ball{ball(1, 0, 4), ball(1, 0, 2)}, core.C(0, 0))

	if !s.AttemptPush(1, core.DirRight) {
		t.Fatal("expected top ball push to succeed")
	}
	if s.Balls[1].Pos != core.C(2, 0) {
		t.Errorf("expected top ball at (2,0), got %v", s.Balls[1].Pos)
	}
	if s.Player != core.C(0, 0) {
		t.Errorf("expected player to stay at (0,0), got %v", s.Player)
	}
}

func TestSnowGrowthIsCapped(t *testing.T) {
	s := core.NewState(grid(t, ".___"), []core.Ball{ball(0, 0, 1)}, core.C(0, 0))

	wantSizes := []int{2, 4, 4}
	for i, want := range wantSizes {
		if !s.AttemptPush(0, core.DirRight) {
			t.Fatalf("push %d failed", i+1)
		}
		if got := s.Balls[0].Size; got != want {
			t.Errorf("after push %d: expected size %d, got %d", i+1, want, got)
		}
		if g := s.Grid.At(s.Balls[0].Pos); g != core.GroundNone {
			t.Errorf("after push %d: expected snow consumed, got %v", i+1, g)
		}
	}
	if s.Grid.SnowCount() != 0 {
		t.Errorf("expected no snow left, got %d", s.Grid.SnowCount())
	}
}

func TestSnowConsumedOnce(t *testing.T) {
	s := core.NewState(grid(t, "._."), []core.Ball{ball(0, 0, 1)}, core.C(0, 0))

	s.AttemptPush(0, core.DirRight)
	s.AttemptPush(0, core.DirRight)
	if !s.AttemptPush(0, core.DirLeft) {
		t.Fatal("expected push back onto old snow cell to succeed")
	}
	if s.Balls[0].Size != 2 {
		t.Errorf("expected size to stay 2, got %d", s.Balls[0].Size)
	}
}

func TestSnowGrowthCustomCap(t *testing.T) {
	s := core.NewStateWithMaxSize(grid(t, ".__"), []core.Ball{ball(0, 0, 3)}, core.C(0, 0), 8)

	s.AttemptPush(0, core.DirRight)
	if s.Balls[0].Size != 6 {
		t.Errorf("expected size 6, got %d", s.Balls[0].Size)
	}
	s.AttemptPush(0, core.DirRight)
	if s.Balls[0].Size != 8 {
		t.Errorf("expected size capped at 8, got %d", s.Balls[0].Size)
	}
}

func TestStepBall(t *testing.T) {
	s := core.NewState(grid(t, "....."), []core.Ball{ball(2, 0, 1)}, core.C(0, 0))

	if !s.StepBall(0, core.DirRight) {
		t.Fatal("expected step to succeed")
	}
	if s.Balls[0].Pos != core.C(3, 0) {
		t.Errorf("expected ball at (3,0), got %v", s.Balls[0].Pos)
	}
	if s.Player != core.C(2, 0) {
		t.Errorf("expected player at (2,0), got %v", s.Player)
	}
	want := []core.Action{{Ball: 0, Dir: core.DirRight}}
	if len(s.Actions) != 1 || s.Actions[0] != want[0] {
		t.Errorf("expected actions %v, got %v", want, s.Actions)
	}
}

func TestStepBallUnreachableStagingIsNoop(t *testing.T) {
	s := core.NewState(grid(t, ".#.."), []core.Ball{ball(2, 0, 1)}, core.C(0, 0))

	if s.StepBall(0, core.DirRight) {
		t.Fatal("expected step to fail")
	}
	if s.Balls[0].Pos != core.C(2, 0) {
		t.Errorf("ball moved to %v", s.Balls[0].Pos)
	}
	if s.Player != core.C(0, 0) {
		t.Errorf("player moved to %v", s.Player)
	}
	if len(s.Actions) != 0 {
		t.Errorf("expected no actions, got %v", s.Actions)
	}
}

func TestStepBallPathBlockedByBalls(t *testing.T) {
	s := core.NewState(grid(t, "....."), []core.Ball{ball(1, 0, 1), ball(3, 0, 2)}, core.C(0, 0))

	if s.StepBall(1, core.DirLeft) {
		t.Fatal("expected step to fail: staging cell is behind two balls")
	}
	if len(s.Actions) != 0 {
		t.Errorf("expected no actions, got %v", s.Actions)
	}
}

func TestStepBallIllegalPushLeavesPlayerOnStaging(t *testing.T) {
	s := core.NewState(grid(t, "....#"), []core.Ball{ball(3, 0, 1)}, core.C(0, 0))

	if s.StepBall(0, core.DirRight) {
		t.Fatal("expected step to fail")
	}
	if s.Balls[0].Pos != core.C(3, 0) {
		t.Errorf("ball moved to %v", s.Balls[0].Pos)
	}
	if s.Player != core.C(2, 0) {
		t.Errorf("expected player on staging cell (2,0), got %v", s.Player)
	}
	if len(s.Actions) != 0 {
		t.Errorf("expected no actions, got %v", s.Actions)
	}
}

func TestPushInvariantsHold(t *testing.T) {
	s := core.NewState(grid(t,
		"._..",
		".#_.",
		"....",
	), []core.Ball{ball(0, 1, 1), ball(2, 2, 2), ball(3, 0, 1)}, core.C(0, 0))

	// Try every push from a handful of states and check the board stays legal.
	frontier := []*core.State{s}
	for depth := 0; depth < 3; depth++ {
		var next []*core.State
		for _, st := range frontier {
			for idx := range st.Balls {
				for _, dir := range core.SearchOrder {
					c := st.Clone()
					sizes := make([]int, len(c.Balls))
					for i, b := range c.Balls {
						sizes[i] = b.Size
					}
					if !c.AttemptPush(idx, dir) {
						continue
					}
					checkInvariants(t, c, sizes)
					next = append(next, c)
				}
			}
		}
		frontier = next
	}
}

func checkInvariants(t *testing.T, s *core.State, prevSizes []int) {
	t.Helper()
	for i, b := range s.Balls {
		if s.Grid.At(b.Pos) == core.GroundBlock {
			t.Errorf("ball %d on block at %v", i, b.Pos)
		}
		if b.Size > s.MaxSize {
			t.Errorf("ball %d size %d exceeds max %d", i, b.Size, s.MaxSize)
		}
		if b.Size < prevSizes[i] {
			t.Errorf("ball %d shrank from %d to %d", i, prevSizes[i], b.Size)
		}
		for j := 0; j < i; j++ {
			o := s.Balls[j]
			if o.Pos == b.Pos && o.Size == b.Size {
				t.Errorf("balls %d and %d share %v with equal size", j, i, b.Pos)
			}
		}
	}
}
