// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Ground   *core.Grid
	Balls    []core.Ball
	Player   core.Coord
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".snow"}
}

// Parse routes data to the parser for ext. id is used by formats that
// do not carry their own identifier.
func Parse(data []byte, ext, id string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt", ".snow":
		return ParseGlyph(data, id)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// splitRows returns the non-blank lines of s with surrounding spaces removed.
func splitRows(s string) []string {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// checkBounds rejects coordinates outside the board.
func checkBounds(l Level) error {
	if !l.Ground.InBounds(l.Player) {
		return fmt.Errorf("player %v outside %dx%d board", l.Player, l.Ground.W, l.Ground.H)
	}
	for i, b := range l.Balls {
		if !l.Ground.InBounds(b.Pos) {
			return fmt.Errorf("ball %d at %v outside %dx%d board", i, b.Pos, l.Ground.W, l.Ground.H)
		}
	}
	return nil
}
