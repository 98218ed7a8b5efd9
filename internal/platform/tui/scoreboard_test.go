package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00.00"},
		{12.5, "0:12.50"},
		{61.25, "1:01.25"},
		{600, "10:00.00"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreboardNavigation(t *testing.T) {
	store := openStore(t)
	store.SaveRun("one", 30)
	store.SaveRun("one", 20)
	store.SaveRun("two", 5)

	m := NewScoreboardModel(testRegistry(t, "one", "two"), store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Seconds != 20 {
		t.Fatalf("runs of one = %+v", m.runs)
	}
	if v := m.View(); !strings.Contains(v, "BEST TIMES - ONE") || !strings.Contains(v, "0:20.00") {
		t.Errorf("view = %q", v)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current() != "two" || len(m.runs) != 1 {
		t.Errorf("after tab: level %s, runs %+v", m.current(), m.runs)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.current() != "two" {
		t.Errorf("prev wrap: level %s", m.current())
	}

	next, _ = m.Update(runes("X"))
	m = next.(ScoreboardModel)
	if len(m.runs) != 0 {
		t.Errorf("runs after clear = %+v", m.runs)
	}
	if _, ok, _ := store.BestTime("one"); !ok {
		t.Error("clearing two removed runs of one")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty message missing")
	}

	next, _ = m.Update(runes("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestScoreboardNarrowWithoutStore(t *testing.T) {
	m := NewScoreboardModel(testRegistry(t, "one"), nil, 50, 20)
	if m.showSidebar {
		t.Error("sidebar shown on a narrow terminal")
	}
	if v := m.View(); !strings.Contains(v, "No runs recorded yet") {
		t.Errorf("view = %q", v)
	}
}
