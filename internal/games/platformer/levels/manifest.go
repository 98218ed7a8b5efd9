package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name looked up at the root of a level source.
const ManifestFile = "levels.yaml"

// Entry describes one level in a manifest.
type Entry struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Source   string  `yaml:"source"`              // File path relative to the manifest
	ParTime  float64 `yaml:"par_time,omitempty"`  // Seconds
	CellSize int     `yaml:"cell_size,omitempty"` // Image pixels per tile
}

// Manifest is the ordered list of levels in a level pack.
type Manifest struct {
	Levels []Entry `yaml:"levels"`
}

// ParseManifest parses a levels.yaml document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	seen := make(map[string]bool, len(m.Levels))
	for i, e := range m.Levels {
		if e.ID == "" || e.Source == "" {
			return Manifest{}, fmt.Errorf("level #%d: id and source are required", i+1)
		}
		if seen[e.ID] {
			return Manifest{}, fmt.Errorf("level %q: duplicate id", e.ID)
		}
		seen[e.ID] = true
		if m.Levels[i].Name == "" {
			m.Levels[i].Name = e.ID
		}
	}
	return m, nil
}
