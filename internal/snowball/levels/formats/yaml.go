package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Player   *YAMLPoint        `yaml:"player"`
	Balls    []YAMLBall        `yaml:"balls"`
	Board    string            `yaml:"board"` // Glyph rows: '.' none, '_' snow, '#' block
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPoint is a board coordinate.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLBall represents a single ball in YAML format.
type YAMLBall struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Size int `yaml:"size"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("missing id")
	}
	if yl.Player == nil {
		return Level{}, errors.New("missing player")
	}

	ground, err := parseBoard(splitRows(yl.Board))
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Ground:   ground,
		Balls:    make([]core.Ball, 0, len(yl.Balls)),
		Player:   core.C(yl.Player.X, yl.Player.Y),
		Metadata: yl.Metadata,
	}
	for _, b := range yl.Balls {
		level.Balls = append(level.Balls, core.Ball{Size: b.Size, Pos: core.C(b.X, b.Y)})
	}
	if err := checkBounds(level); err != nil {
		return Level{}, err
	}
	return level, nil
}

// MarshalYAML encodes a level in the format ParseYAML reads.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Player:   &YAMLPoint{X: l.Player.X, Y: l.Player.Y},
		Board:    core.RenderGround(l.Ground),
		Metadata: l.Metadata,
	}
	for _, b := range l.Balls {
		yl.Balls = append(yl.Balls, YAMLBall{X: b.Pos.X, Y: b.Pos.Y, Size: b.Size})
	}
	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// parseBoard converts terrain rows into a grid.
func parseBoard(rows []string) (*core.Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty board")
	}
	width := len(rows[0])
	cells := make([][]core.Ground, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		cells[y] = make([]core.Ground, width)
		for x, r := range row {
			g, ok := core.ParseGround(r)
			if !ok {
				return nil, fmt.Errorf("unknown glyph %q at (%d,%d)", r, x, y)
			}
			cells[y][x] = g
		}
	}
	return core.GridFromRows(cells), nil
}
