// Package replay runs scripted input against a level without a terminal.
//
// A script is YAML:
//
//	level: tower
//	seed: 7
//	steps:
//	  - ticks: 40
//	    hold: [right]
//	  - ticks: 1
//	    hold: [right, jump]
//	expect: won
//
// Steps play in order; after the last step no actions are held.
package replay

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	engine "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// ErrBadScript is wrapped by every script validation failure.
var ErrBadScript = errors.New("bad replay script")

// Step holds a set of actions for a number of ticks.
type Step struct {
	Ticks int      `yaml:"ticks"`
	Hold  []string `yaml:"hold"`
}

// Script is a parsed input script.
type Script struct {
	Level    string `yaml:"level"`
	Seed     int64  `yaml:"seed"`
	TickRate int    `yaml:"tick_rate"` // 0 uses the configured rate
	MaxTicks int    `yaml:"max_ticks"` // 0 plays the steps, then 10 more seconds
	Steps    []Step `yaml:"steps"`
	Expect   string `yaml:"expect"` // "won", "stopped", "ongoing" or empty

	controls []core.Controls // One entry per scripted tick
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return Parse(data)
}

func (s *Script) compile() error {
	switch s.Expect {
	case "", "won", "stopped", "ongoing":
	default:
		return fmt.Errorf("replay: %w: unknown expect %q", ErrBadScript, s.Expect)
	}
	if s.TickRate < 0 || s.MaxTicks < 0 {
		return fmt.Errorf("replay: %w: negative tick_rate or max_ticks", ErrBadScript)
	}

	s.controls = s.controls[:0]
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return fmt.Errorf("replay: %w: step %d: ticks must be positive", ErrBadScript, i+1)
		}
		frame := engine.NewInputFrame()
		for _, name := range st.Hold {
			a, ok := engine.ParseAction(name)
			if !ok {
				return fmt.Errorf("replay: %w: step %d: unknown action %q", ErrBadScript, i+1, name)
			}
			frame.Set(a)
		}
		c := platformer.ControlsFrom(frame)
		for range st.Ticks {
			s.controls = append(s.controls, c)
		}
	}
	return nil
}

// Len returns the number of scripted ticks.
func (s *Script) Len() int { return len(s.controls) }

// Input returns the controls held on tick (0-based).
func (s *Script) Input(tick int) core.Controls {
	if tick < 0 || tick >= len(s.controls) {
		return core.Controls{}
	}
	return s.controls[tick]
}

// Options tune a replay run.
type Options struct {
	TickRate int                               // Used when the script has none
	Realtime bool                              // Pace ticks at wall-clock speed
	OnTick   func(tick int, r core.TickResult) // Optional progress callback
}

// Result is the outcome of a replay.
type Result struct {
	Status    core.Status
	Elapsed   float64
	Ticks     int
	CoinsLeft int
	Met       bool // Outcome matches Expect (true when Expect is empty)
}

// Run plays the script on w until the level ends, the tick budget runs out
// or ctx is cancelled.
func Run(ctx context.Context, s *Script, w *core.World, opts Options) Result {
	rate := s.TickRate
	if rate <= 0 {
		rate = opts.TickRate
	}
	if rate <= 0 {
		rate = 60
	}
	maxTicks := s.MaxTicks
	if maxTicks == 0 {
		maxTicks = s.Len() + 10*rate
	}

	r := &core.Runner{
		World:    w,
		Dt:       1 / float64(rate),
		MaxTicks: maxTicks,
		Input:    s.Input,
		OnTick:   opts.OnTick,
	}
	if opts.Realtime {
		r.Interval = time.Second / time.Duration(rate)
	}

	sum := r.Run(ctx)
	res := Result{
		Status:    sum.Result.Status,
		Elapsed:   sum.Result.Elapsed,
		Ticks:     sum.Ticks,
		CoinsLeft: w.CoinsRemaining(),
	}
	res.Met = s.Expect == "" || s.Expect == res.Status.String()
	return res
}
