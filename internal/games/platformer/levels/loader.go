// Package levels provides level loading for the platformer.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

// ErrUnknownLevel is returned when a level id is not in the pack.
var ErrUnknownLevel = errors.New("unknown level")

//go:embed data
var builtinFS embed.FS

// Builtin returns the level pack shipped with the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	return sub
}

// Loader reads levels from a level pack and caches parsed levels.
type Loader struct {
	fsys    fs.FS
	entries []Entry
	cache   map[string]*core.Level
	logger  *log.Logger
}

// Open creates a loader for dir, or for the built-in pack if dir is empty.
func Open(dir string, logger *log.Logger) (*Loader, error) {
	if dir == "" {
		return NewLoader(Builtin(), logger)
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", dir)
	}
	return NewLoader(os.DirFS(dir), logger)
}

// NewLoader indexes the pack in fsys. The order comes from levels.yaml when
// present; otherwise every supported file is a level, sorted by file name.
func NewLoader(fsys fs.FS, logger *log.Logger) (*Loader, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loader{
		fsys:   fsys,
		cache:  make(map[string]*core.Level),
		logger: logger,
	}

	data, err := fs.ReadFile(fsys, ManifestFile)
	switch {
	case err == nil:
		m, err := ParseManifest(data)
		if err != nil {
			return nil, fmt.Errorf("levels: %s: %w", ManifestFile, err)
		}
		l.entries = m.Levels
	case errors.Is(err, fs.ErrNotExist):
		entries, err := scan(fsys)
		if err != nil {
			return nil, fmt.Errorf("levels: %w", err)
		}
		l.entries = entries
	default:
		return nil, fmt.Errorf("levels: reading %s: %w", ManifestFile, err)
	}

	if len(l.entries) == 0 {
		return nil, fmt.Errorf("levels: no levels found")
	}
	return l, nil
}

// scan lists supported level files when there is no manifest.
func scan(fsys fs.FS) ([]Entry, error) {
	var entries []Entry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(p) {
			return nil
		}
		id := strings.TrimSuffix(p, path.Ext(p))
		entries = append(entries, Entry{ID: id, Name: path.Base(id), Source: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Entries returns the pack's levels in play order.
func (l *Loader) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Entry returns the manifest entry for id.
func (l *Loader) Entry(id string) (Entry, error) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("levels: %q: %w", id, ErrUnknownLevel)
}

// First returns the id of the first level.
func (l *Loader) First() string {
	return l.entries[0].ID
}

// Next returns the id of the level after id, if any.
func (l *Loader) Next(id string) (string, bool) {
	for i, e := range l.entries {
		if e.ID == id && i+1 < len(l.entries) {
			return l.entries[i+1].ID, true
		}
	}
	return "", false
}

// Load parses a level once and returns the cached copy afterwards.
// Levels are immutable; worlds clone their grid.
func (l *Loader) Load(id string) (*core.Level, error) {
	if lvl, ok := l.cache[id]; ok {
		return lvl, nil
	}
	e, err := l.Entry(id)
	if err != nil {
		return nil, err
	}

	g, err := formats.Load(l.fsys, e.Source, formats.Options{CellSize: e.CellSize})
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", e.ID, err)
	}
	lvl, err := core.NewLevel(e.ID, e.Name, g)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	lvl.ParTime = e.ParTime

	l.cache[id] = lvl
	l.logger.Debug("level loaded", "id", e.ID, "source", e.Source, "w", lvl.W, "h", lvl.H, "coins", lvl.CoinsTotal)
	return lvl, nil
}

// CheckResult is the outcome of validating one level.
type CheckResult struct {
	Entry Entry
	Level *core.Level // nil when Err is set
	Err   error
}

// Check loads every level in the pack and reports each outcome.
func (l *Loader) Check() []CheckResult {
	results := make([]CheckResult, 0, len(l.entries))
	for _, e := range l.entries {
		lvl, err := l.Load(e.ID)
		results = append(results, CheckResult{Entry: e, Level: lvl, Err: err})
	}
	return results
}
