package core

import (
	"cmp"
	"fmt"
	"slices"
)

// TimerKind tells which tile effect a timer drives.
type TimerKind uint8

const (
	TimerCrumble TimerKind = iota // Crumbling wall frames, destroyed when done
	TimerCoin                     // Looping coin spin
	TimerExit                     // Exit tile flash once every coin is taken
)

func (k TimerKind) String() string {
	switch k {
	case TimerCrumble:
		return "crumble"
	case TimerCoin:
		return "coin"
	case TimerExit:
		return "exit"
	default:
		return "unknown"
	}
}

// TimerKey identifies a timer by the tile it belongs to and its kind.
type TimerKey struct {
	X, Y int
	Kind TimerKind
}

func (k TimerKey) String() string {
	return fmt.Sprintf("%s(%d,%d)", k.Kind, k.X, k.Y)
}

// TimerConfig describes a phase timer at creation time.
type TimerConfig struct {
	MaxValue float64 // Highest value before wrapping or finishing
	Seconds  float64 // Time to run from 0 to MaxValue
	Destroy  bool    // Finish at MaxValue instead of wrapping
	Toggled  bool    // Start running immediately
}

// PhaseTimer runs from 0 to MaxValue at Speed units per second while toggled.
type PhaseTimer struct {
	Value    float64
	Speed    float64
	MaxValue float64
	Destroy  bool
	Toggled  bool
	Finished bool
}

func (t *PhaseTimer) advance(dt float64) (finished bool) {
	if !t.Toggled || t.Finished {
		return false
	}
	t.Value += t.Speed * dt
	if t.Value > t.MaxValue {
		if t.Destroy {
			t.Value = t.MaxValue
			t.Finished = true
			return true
		}
		t.Value = 0
	}
	return false
}

// FlashTimer ping-pongs between 0 and 1 while toggled and fades out afterwards.
type FlashTimer struct {
	Value   float64
	Speed   float64
	Mod     float64 // +1 rising, -1 falling
	Toggled bool
	Running bool
}

func (f *FlashTimer) advance(dt float64) {
	switch {
	case f.Toggled:
		f.Running = true
		f.Value += dt * f.Mod * f.Speed
		if f.Value >= 1 {
			f.Value = 1
			f.Mod = -1
		}
		if f.Value <= 0 {
			f.Value = 0
			f.Mod = 1
		}
	case f.Running:
		f.Mod = 1
		f.Value -= dt * f.Speed
		if f.Value <= 0 {
			f.Value = 0
			f.Running = false
		}
	default:
		f.Value = 0
	}
}

// Timers is the registry of per-tile animation timers.
// Unknown keys read as absent: value 0, not toggled, not finished.
type Timers struct {
	phase map[TimerKey]*PhaseTimer
	flash map[TimerKey]*FlashTimer
}

// NewTimers creates an empty registry.
func NewTimers() *Timers {
	return &Timers{
		phase: make(map[TimerKey]*PhaseTimer),
		flash: make(map[TimerKey]*FlashTimer),
	}
}

// Create adds (or replaces) a phase timer.
func (t *Timers) Create(key TimerKey, cfg TimerConfig) {
	speed := 0.0
	if cfg.Seconds > 0 {
		speed = cfg.MaxValue / cfg.Seconds
	}
	t.phase[key] = &PhaseTimer{
		Speed:    speed,
		MaxValue: cfg.MaxValue,
		Destroy:  cfg.Destroy,
		Toggled:  cfg.Toggled,
	}
}

// CreateFlash adds (or replaces) a flash timer that covers 0..1 in 1/speed seconds.
func (t *Timers) CreateFlash(key TimerKey, speed float64) {
	t.flash[key] = &FlashTimer{Speed: speed, Mod: 1}
}

// Toggle switches a timer on or off. Unknown keys are ignored.
func (t *Timers) Toggle(key TimerKey, on bool) {
	if p, ok := t.phase[key]; ok {
		p.Toggled = on
	}
	if f, ok := t.flash[key]; ok {
		f.Toggled = on
	}
}

// Advance moves every timer forward by dt seconds. It returns the keys of
// phase timers that finished during this call, sorted by position.
// A timer finishes at most once.
func (t *Timers) Advance(dt float64) []TimerKey {
	var finished []TimerKey
	for key, p := range t.phase {
		if p.advance(dt) {
			finished = append(finished, key)
		}
	}
	for _, f := range t.flash {
		f.advance(dt)
	}
	slices.SortFunc(finished, compareKeys)
	return finished
}

// Value returns the current value of the timer, or 0 if it does not exist.
func (t *Timers) Value(key TimerKey) float64 {
	if p, ok := t.phase[key]; ok {
		return p.Value
	}
	if f, ok := t.flash[key]; ok {
		return f.Value
	}
	return 0
}

// Toggled reports whether the timer exists and is switched on.
func (t *Timers) Toggled(key TimerKey) bool {
	if p, ok := t.phase[key]; ok {
		return p.Toggled
	}
	if f, ok := t.flash[key]; ok {
		return f.Toggled
	}
	return false
}

// IsFinished reports whether a destroy timer has reached its end.
func (t *Timers) IsFinished(key TimerKey) bool {
	p, ok := t.phase[key]
	return ok && p.Finished
}

// Phase returns a copy of the phase timer for inspection.
func (t *Timers) Phase(key TimerKey) (PhaseTimer, bool) {
	p, ok := t.phase[key]
	if !ok {
		return PhaseTimer{}, false
	}
	return *p, true
}

// Flash returns a copy of the flash timer for inspection.
func (t *Timers) Flash(key TimerKey) (FlashTimer, bool) {
	f, ok := t.flash[key]
	if !ok {
		return FlashTimer{}, false
	}
	return *f, true
}

// Remove deletes the timer. Removing an unknown key is a no-op.
func (t *Timers) Remove(key TimerKey) {
	delete(t.phase, key)
	delete(t.flash, key)
}

// Len returns the number of live timers of both kinds.
func (t *Timers) Len() int {
	return len(t.phase) + len(t.flash)
}

// Each calls fn for every timer with its current value, sorted by position.
func (t *Timers) Each(fn func(key TimerKey, value float64)) {
	keys := make([]TimerKey, 0, t.Len())
	for k := range t.phase {
		keys = append(keys, k)
	}
	for k := range t.flash {
		if _, dup := t.phase[k]; !dup {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, compareKeys)
	for _, k := range keys {
		fn(k, t.Value(k))
	}
}

// Reset removes every timer.
func (t *Timers) Reset() {
	clear(t.phase)
	clear(t.flash)
}

func compareKeys(a, b TimerKey) int {
	return cmp.Or(
		cmp.Compare(a.Y, b.Y),
		cmp.Compare(a.X, b.X),
		cmp.Compare(a.Kind, b.Kind),
	)
}
