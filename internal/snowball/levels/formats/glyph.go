package formats

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// ParseGlyph parses the compact text format:
//
//	; name: Corner
//	A..#
//	.2_.
//	...1
//
// '.', '_' and '#' are terrain, a digit 1-9 is a ball of that size and
// 'A' is the player; both stand on None ground. Leading "; key: value"
// lines set the name or metadata.
func ParseGlyph(data []byte, id string) (Level, error) {
	if id == "" {
		return Level{}, errors.New("missing id")
	}

	level := Level{ID: id}
	var rows []string
	for _, line := range splitRows(string(data)) {
		if strings.HasPrefix(line, ";") {
			if len(rows) > 0 {
				return Level{}, errors.New("header line after board rows")
			}
			parseHeader(&level, strings.TrimSpace(line[1:]))
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return Level{}, errors.New("empty board")
	}

	width := utf8.RuneCountInString(rows[0])
	ground := core.NewGrid(width, len(rows))
	playerFound := false
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return Level{}, fmt.Errorf("row %d has width %d, want %d", y, n, width)
		}
		x := 0
		for _, r := range row {
			c := core.C(x, y)
			x++
			switch {
			case r == 'A':
				if playerFound {
					return Level{}, fmt.Errorf("second player at %v", c)
				}
				level.Player = c
				playerFound = true
			case r >= '1' && r <= '9':
				level.Balls = append(level.Balls, core.Ball{Size: int(r - '0'), Pos: c})
			default:
				g, ok := core.ParseGround(r)
				if !ok {
					return Level{}, fmt.Errorf("unknown glyph %q at %v", r, c)
				}
				ground.Set(c, g)
			}
		}
	}
	if !playerFound {
		return Level{}, errors.New("missing player")
	}

	level.Ground = ground
	return level, nil
}

func parseHeader(l *Level, header string) {
	key, value, ok := strings.Cut(header, ":")
	if !ok {
		return
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if key == "name" {
		l.Name = value
		return
	}
	if l.Metadata == nil {
		l.Metadata = make(map[string]string)
	}
	l.Metadata[key] = value
}
