package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

func TestBuiltinPackLoads(t *testing.T) {
	l, err := NewLoader(Builtin(), nil)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 built-in levels, got %d", len(entries))
	}
	for _, res := range l.Check() {
		if res.Err != nil {
			t.Errorf("level %s: %v", res.Entry.ID, res.Err)
			continue
		}
		if res.Level.CoinsTotal == 0 {
			t.Errorf("level %s has no coins", res.Entry.ID)
		}
		if res.Level.Stats().Counts[core.KindEnd] == 0 {
			t.Errorf("level %s has no exit", res.Entry.ID)
		}
		if res.Level.ParTime <= 0 {
			t.Errorf("level %s has no par time", res.Entry.ID)
		}
	}
}

func TestLoaderCachesLevels(t *testing.T) {
	l, err := NewLoader(Builtin(), nil)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	a, err := l.Load(l.First())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b, _ := l.Load(l.First())
	if a != b {
		t.Error("second Load should return the cached level")
	}
}

func TestLoaderOrderAndNext(t *testing.T) {
	fsys := fstest.MapFS{
		"levels.yaml": {Data: []byte("levels:\n  - id: b\n    source: b.txt\n  - id: a\n    source: a.txt\n    name: First\n")},
		"a.txt":       {Data: []byte("#SE#\n")},
		"b.txt":       {Data: []byte("#ES#\n")},
	}
	l, err := NewLoader(fsys, nil)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	if l.First() != "b" {
		t.Errorf("manifest order should win, first = %q", l.First())
	}
	if next, ok := l.Next("b"); !ok || next != "a" {
		t.Errorf("Next(b) = %q, %v", next, ok)
	}
	if _, ok := l.Next("a"); ok {
		t.Error("last level should have no next")
	}

	e, _ := l.Entry("b")
	if e.Name != "b" {
		t.Errorf("missing name should default to id, got %q", e.Name)
	}
	if _, err := l.Load("zzz"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestLoaderScansWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("#S.E#\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("#SE#\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	entries := l.Entries()
	if len(entries) != 2 || entries[0].ID != "a" || entries[1].ID != "b" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	lvl, err := l.Load("b")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lvl.W != 5 || lvl.StartX != 1 {
		t.Errorf("unexpected level %+v", lvl)
	}
}

func TestLoaderReportsBadLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels.yaml": {Data: []byte("levels:\n  - id: ok\n    source: ok.txt\n  - id: nostart\n    source: nostart.txt\n")},
		"ok.txt":      {Data: []byte("#S#\n")},
		"nostart.txt": {Data: []byte("#.#\n")},
	}
	l, err := NewLoader(fsys, nil)
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}

	results := l.Check()
	if results[0].Err != nil {
		t.Errorf("ok level failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, core.ErrNoStart) || results[1].Level != nil {
		t.Errorf("expected ErrNoStart, got %v", results[1].Err)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing source", "levels:\n  - id: a\n"},
		{"duplicate id", "levels:\n  - id: a\n    source: a.txt\n  - id: a\n    source: b.txt\n"},
		{"bad yaml", "levels: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tc.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestOpenMissingDir(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
