package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not be affected by Clear on the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report nothing held")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		want   Action
		wantOK bool
	}{
		{"left", ActionLeft, true},
		{"right", ActionRight, true},
		{"up", ActionUp, true},
		{"down", ActionDown, true},
		{"jump", ActionJump, true},
		{"debug", ActionDebug, true},
		{"fly", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAction(tc.name)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if got := cfg.TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %v, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60.0 {
		t.Errorf("zero tick rate should default to 60Hz, got %v", got)
	}
}
