// Package levels provides level loading functionality for the snowball puzzle.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels/formats"
)

// ErrLevelNotFound is returned by LoadByID for an unknown ID.
var ErrLevelNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Ground   *core.Grid
	Balls    []core.Ball
	Player   core.Coord
	Metadata map[string]string
	FilePath string
}

// Title returns the name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Validate checks the layout against a ball size cap.
func (l *Level) Validate(maxSize int) error {
	if err := core.ValidateLayout(l.Ground, l.Balls, l.Player, maxSize); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}

// NewState validates the layout and creates the initial game state.
func (l *Level) NewState(maxSize int) (*core.State, error) {
	if err := l.Validate(maxSize); err != nil {
		return nil, err
	}
	return core.NewStateWithMaxSize(l.Ground, l.Balls, l.Player, maxSize), nil
}

// EncodeYAML writes the level in the YAML level format.
func (l *Level) EncodeYAML() ([]byte, error) {
	data, err := formats.MarshalYAML(formats.Level{
		ID:       l.ID,
		Name:     l.Name,
		Ground:   l.Ground,
		Balls:    l.Balls,
		Player:   l.Player,
		Metadata: l.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return data, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

func (l *Loader) files() fs.FS {
	if l.fsys == nil {
		l.fsys = os.DirFS(l.Root)
	}
	return l.fsys
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	fsys := l.files()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil
		}
		level, err := parse(data, p, filepath.Join(l.Root, filepath.FromSlash(p)))
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file from disk.
func (l *Loader) LoadFile(p string) (Level, error) {
	return LoadFile(p)
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, p, p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve loads ref as a file if one exists at that path, otherwise as an ID.
func (l *Loader) Resolve(ref string) (Level, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}
	return l.LoadByID(ref)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parse decodes data named by name (slash or OS path) and records filePath.
func parse(data []byte, name, filePath string) (Level, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(filepath.Base(name), ext)

	parsed, err := formats.Parse(data, ext, stem)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Ground:   parsed.Ground,
		Balls:    parsed.Balls,
		Player:   parsed.Player,
		Metadata: parsed.Metadata,
		FilePath: filePath,
	}, nil
}
