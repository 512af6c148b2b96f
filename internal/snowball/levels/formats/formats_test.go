package formats_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels/formats"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: corner
name: Corner
player: {x: 2, y: 1}
balls:
  - {x: 0, y: 0, size: 1}
  - {x: 1, y: 1, size: 4}
board: |
  ._#
  ...
metadata:
  author: test
`)

	lvl, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "corner" || lvl.Name != "Corner" {
		t.Errorf("unexpected id/name %q/%q", lvl.ID, lvl.Name)
	}
	if lvl.Ground.W != 3 || lvl.Ground.H != 2 {
		t.Errorf("expected 3x2, got %dx%d", lvl.Ground.W, lvl.Ground.H)
	}
	if lvl.Ground.At(core.C(1, 0)) != core.GroundSnow || lvl.Ground.At(core.C(2, 0)) != core.GroundBlock {
		t.Error("terrain not parsed")
	}
	if lvl.Player != core.C(2, 1) {
		t.Errorf("expected player at (2,1), got %v", lvl.Player)
	}
	want := []core.Ball{{Size: 1, Pos: core.C(0, 0)}, {Size: 4, Pos: core.C(1, 1)}}
	if len(lvl.Balls) != len(want) {
		t.Fatalf("expected %d balls, got %d", len(want), len(lvl.Balls))
	}
	for i := range want {
		if lvl.Balls[i] != want[i] {
			t.Errorf("ball %d: expected %v, got %v", i, want[i], lvl.Balls[i])
		}
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("expected metadata author, got %v", lvl.Metadata)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not yaml", "id: [", "yaml unmarshal"},
		{"missing id", "player: {x: 0, y: 0}\nboard: \"..\"\n", "missing id"},
		{"missing player", "id: a\nboard: \"..\"\n", "missing player"},
		{"empty board", "id: a\nplayer: {x: 0, y: 0}\n", "empty board"},
		{"ragged", "id: a\nplayer: {x: 0, y: 0}\nboard: |\n  ...\n  ..\n", "width"},
		{"bad glyph", "id: a\nplayer: {x: 0, y: 0}\nboard: \".x\"\n", "unknown glyph"},
		{"player outside", "id: a\nplayer: {x: 5, y: 0}\nboard: \"..\"\n", "player"},
		{"ball outside", "id: a\nplayer: {x: 0, y: 0}\nballs: [{x: 0, y: 3, size: 1}]\nboard: \"..\"\n", "ball 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formats.ParseYAML([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Set(core.C(1, 0), core.GroundSnow)
	g.Set(core.C(2, 1), core.GroundBlock)
	orig := formats.Level{
		ID:     "rt",
		Name:   "Round Trip",
		Ground: g,
		Balls:  []core.Ball{{Size: 2, Pos: core.C(0, 1)}},
		Player: core.C(0, 0),
	}

	data, err := formats.MarshalYAML(orig)
	if err != nil {
		t.Fatalf("MarshalYAML failed: %v", err)
	}
	got, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v\n%s", err, data)
	}
	if got.ID != orig.ID || got.Name != orig.Name || got.Player != orig.Player {
		t.Errorf("header mismatch: %+v", got)
	}
	if core.RenderGround(got.Ground) != core.RenderGround(orig.Ground) {
		t.Errorf("ground mismatch:\n%s", core.RenderGround(got.Ground))
	}
	if len(got.Balls) != 1 || got.Balls[0] != orig.Balls[0] {
		t.Errorf("balls mismatch: %v", got.Balls)
	}
}

func TestParseGlyph(t *testing.T) {
	data := []byte(`
; name: Snow Row
; Difficulty: easy
A1_..
.#..2
`)

	lvl, err := formats.ParseGlyph(data, "row")
	if err != nil {
		t.Fatalf("ParseGlyph failed: %v", err)
	}
	if lvl.ID != "row" || lvl.Name != "Snow Row" {
		t.Errorf("unexpected id/name %q/%q", lvl.ID, lvl.Name)
	}
	if lvl.Metadata["difficulty"] != "easy" {
		t.Errorf("expected difficulty metadata, got %v", lvl.Metadata)
	}
	if lvl.Player != core.C(0, 0) {
		t.Errorf("expected player at (0,0), got %v", lvl.Player)
	}
	want := []core.Ball{{Size: 1, Pos: core.C(1, 0)}, {Size: 2, Pos: core.C(4, 1)}}
	if len(lvl.Balls) != len(want) {
		t.Fatalf("expected %d balls, got %v", len(want), lvl.Balls)
	}
	for i := range want {
		if lvl.Balls[i] != want[i] {
			t.Errorf("ball %d: expected %v, got %v", i, want[i], lvl.Balls[i])
		}
	}
	if got := core.RenderGround(lvl.Ground); got != ".._..\n.#...\n" {
		t.Errorf("unexpected ground:\n%s", got)
	}
}

func TestParseGlyphErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   string
	}{
		{"no id", "A1", ""},
		{"no player", "..1", "x"},
		{"two players", "A.A1", "x"},
		{"ragged", "A1\n...", "x"},
		{"bad glyph", "A1?", "x"},
		{"only header", "; name: x", "x"},
		{"header after rows", "A1\n; name: x", "x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := formats.ParseGlyph([]byte(tc.data), tc.id); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseRoutesByExtension(t *testing.T) {
	if _, err := formats.Parse([]byte("A1.2"), ".SNOW", "x"); err != nil {
		t.Errorf("expected .SNOW to parse as glyphs: %v", err)
	}
	if _, err := formats.Parse([]byte("A1.2"), ".json", "x"); err == nil {
		t.Error("expected unsupported extension error")
	}
}
