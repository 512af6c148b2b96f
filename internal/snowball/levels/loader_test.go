package levels_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels"
	"github.com/vovakirdan/snowpush/internal/snowball/levels/formats"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(testdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml is skipped, notes.md is ignored, extra/ is walked.
	wantIDs := []string{"lvl01", "lvl02", "lvl03"}
	if len(lvls) != len(wantIDs) {
		t.Fatalf("expected %d levels, got %d", len(wantIDs), len(lvls))
	}
	for i, id := range wantIDs {
		if lvls[i].ID != id {
			t.Errorf("level %d: expected %s, got %s", i, id, lvls[i].ID)
		}
	}
	if want := filepath.Join(testdataPath(), "extra", "lvl03.txt"); lvls[2].FilePath != want {
		t.Errorf("expected file path %s, got %s", want, lvls[2].FilePath)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(testdataPath())

	lvl, err := loader.LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Snow Row" {
		t.Errorf("expected name 'Snow Row', got %q", lvl.Name)
	}
	if lvl.Ground.W != 6 || lvl.Ground.H != 2 {
		t.Errorf("expected 6x2, got %dx%d", lvl.Ground.W, lvl.Ground.H)
	}
	if len(lvl.Balls) != 2 {
		t.Errorf("expected 2 balls, got %d", len(lvl.Balls))
	}
	if lvl.Ground.SnowCount() != 1 {
		t.Errorf("expected 1 snow cell, got %d", lvl.Ground.SnowCount())
	}
}

func TestLoaderNotFound(t *testing.T) {
	loader := levels.NewLoader(testdataPath())

	_, err := loader.LoadByID("nonexistent")
	if !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := levels.NewLoader(filepath.Join(t.TempDir(), "missing"))

	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := levels.NewLoader(testdataPath()).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if strings.Join(ids, ",") != "lvl01,lvl02,lvl03" {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestLoaderZeroValue(t *testing.T) {
	loader := &levels.Loader{Root: testdataPath()}

	if _, err := loader.LoadByID("lvl01"); err != nil {
		t.Errorf("LoadByID on zero-value loader failed: %v", err)
	}
}

func TestResolve(t *testing.T) {
	loader := levels.Builtin()

	byFile, err := loader.Resolve(filepath.Join(testdataPath(), "lvl01.yaml"))
	if err != nil {
		t.Fatalf("Resolve file failed: %v", err)
	}
	if byFile.ID != "lvl01" {
		t.Errorf("expected lvl01, got %s", byFile.ID)
	}

	byID, err := loader.Resolve("reference")
	if err != nil {
		t.Fatalf("Resolve id failed: %v", err)
	}
	if byID.ID != "reference" {
		t.Errorf("expected reference, got %s", byID.ID)
	}

	if _, err := loader.Resolve("no-such-level"); !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestLevelNewStateValidates(t *testing.T) {
	lvl, err := levels.LoadFile(filepath.Join(testdataPath(), "lvl01.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	s, err := lvl.NewState(core.DefaultMaxBallSize)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if s.Player != core.C(0, 0) || len(s.Balls) != 2 {
		t.Errorf("unexpected state: player %v, %d balls", s.Player, len(s.Balls))
	}

	// Ball 1 has size 2, which is above a cap of 1.
	_, err = lvl.NewState(1)
	var verr core.ValidationError
	if !errors.As(err, &verr) || verr.Code != "BAD_BALL_SIZE" {
		t.Errorf("expected BAD_BALL_SIZE, got %v", err)
	}

	lvl.Player = lvl.Balls[0].Pos
	_, err = lvl.NewState(core.DefaultMaxBallSize)
	if !errors.As(err, &verr) || verr.Code != "PLAYER_ON_BALL" {
		t.Errorf("expected PLAYER_ON_BALL, got %v", err)
	}
}

func TestLevelTitle(t *testing.T) {
	lvl := levels.Level{ID: "x"}
	if lvl.Title() != "x" {
		t.Errorf("expected ID fallback, got %q", lvl.Title())
	}
	lvl.Name = "Named"
	if lvl.Title() != "Named" {
		t.Errorf("expected name, got %q", lvl.Title())
	}
}

func TestEncodeYAMLConvertsGlyphLevel(t *testing.T) {
	lvl, err := levels.NewLoader(testdataPath()).LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	data, err := lvl.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}
	got, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v\n%s", err, data)
	}

	if got.ID != "lvl02" || got.Name != "Snow Row" {
		t.Errorf("header mismatch: id=%q name=%q", got.ID, got.Name)
	}
	if got.Metadata["difficulty"] != "easy" {
		t.Errorf("expected metadata to survive, got %v", got.Metadata)
	}
	if g, w := core.RenderGround(got.Ground), core.RenderGround(lvl.Ground); g != w {
		t.Errorf("ground mismatch:\n%s\nvs\n%s", g, w)
	}
	if got.Player != lvl.Player {
		t.Errorf("player mismatch: %v vs %v", got.Player, lvl.Player)
	}
	if len(got.Balls) != len(lvl.Balls) {
		t.Fatalf("expected %d balls, got %d", len(lvl.Balls), len(got.Balls))
	}
	for i := range got.Balls {
		if got.Balls[i] != lvl.Balls[i] {
			t.Errorf("ball %d mismatch: %v vs %v", i, got.Balls[i], lvl.Balls[i])
		}
	}
}
