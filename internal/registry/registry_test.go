package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegistryOrderAndCreate(t *testing.T) {
	r := New()
	for _, id := range []string{"tower", "meadow", "caves"} {
		id := id
		if err := r.Register(id, "Level "+id, func() Game { return &stubGame{id: id} }); err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}

	list := r.List()
	if len(list) != 3 || list[0].ID != "tower" || list[2].ID != "caves" {
		t.Errorf("List() = %+v, want registration order", list)
	}
	if list[1].Title != "Level meadow" {
		t.Errorf("title = %q", list[1].Title)
	}

	g, err := r.Create("meadow")
	if err != nil || g.ID() != "meadow" {
		t.Errorf("Create(meadow) = %v, %v", g, err)
	}
	if !r.Exists("caves") || r.Exists("nope") {
		t.Error("Exists mismatch")
	}
	if _, err := r.Create("nope"); err == nil {
		t.Error("Create(nope): expected error")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := New()
	f := func() Game { return &stubGame{id: "a"} }
	if err := r.Register("a", "A", f); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("a", "A", f); err == nil {
		t.Error("duplicate Register: expected error")
	}
}
