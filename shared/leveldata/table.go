package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// LevelDef is one entry of the level table.
type LevelDef struct {
	Name    string   `yaml:"name"`
	Hazards int      `yaml:"hazards"`
	Rows    []string `yaml:"rows,omitempty"`
	TMX     string   `yaml:"tmx,omitempty"`

	Grid Grid `yaml:"-"`
}

// Table is the ordered list of playable levels. Level numbers start at 1.
type Table struct {
	Levels []LevelDef `yaml:"levels"`
}

// LoadTable reads a YAML level table from fsys. TMX references are resolved
// relative to the table's directory.
func LoadTable(fsys fs.FS, tablePath string) (*Table, error) {
	data, err := fs.ReadFile(fsys, tablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level table %s: %w", tablePath, err)
	}
	return ParseTable(data, fsys, path.Dir(tablePath))
}

// ParseTable decodes a YAML level table and resolves every grid.
func ParseTable(data []byte, fsys fs.FS, dir string) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse level table: %w", err)
	}
	if len(t.Levels) == 0 {
		return nil, fmt.Errorf("level table has no levels")
	}

	for i := range t.Levels {
		def := &t.Levels[i]
		var err error
		switch {
		case def.TMX != "":
			if fsys == nil {
				return nil, fmt.Errorf("level %d (%s): tmx reference without a filesystem", i+1, def.Name)
			}
			def.Grid, err = LoadTMX(fsys, path.Join(dir, def.TMX))
		case len(def.Rows) > 0:
			def.Grid, err = ParseRows(def.Rows)
		default:
			err = ErrEmptyGrid
		}
		if err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i+1, def.Name, err)
		}
		if def.Hazards < 0 {
			return nil, fmt.Errorf("level %d (%s): negative hazard count %d", i+1, def.Name, def.Hazards)
		}
	}
	return &t, nil
}

// Len returns the number of levels.
func (t *Table) Len() int { return len(t.Levels) }

// Level returns level n, counting from 1.
func (t *Table) Level(n int) (LevelDef, error) {
	if n < 1 || n > len(t.Levels) {
		return LevelDef{}, fmt.Errorf("level %d: %w", n, ErrUnknownLevel)
	}
	return t.Levels[n-1], nil
}
