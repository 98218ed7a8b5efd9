package core

import (
	"context"
	"time"
)

// Runner drives a World at a fixed step outside of any UI.
type Runner struct {
	World    *World
	Dt       float64       // Seconds per tick
	Interval time.Duration // Wall-clock time between ticks; 0 runs flat out
	MaxTicks int           // Give up after this many ticks; 0 for no limit

	// Input returns the controls for the given tick. Nil means no input.
	Input func(tick int) Controls
	// OnTick is called after every tick with its result.
	OnTick func(tick int, res TickResult)
}

// RunSummary is what Run returns.
type RunSummary struct {
	Result TickResult
	Ticks  int
}

// Run steps the world until it is won or stopped, MaxTicks is reached, or ctx
// is cancelled. Cancellation stops the world between two ticks.
func (r *Runner) Run(ctx context.Context) RunSummary {
	var tick <-chan time.Time
	if r.Interval > 0 {
		t := time.NewTicker(r.Interval)
		defer t.Stop()
		tick = t.C
	}

	var sum RunSummary
	for r.MaxTicks <= 0 || sum.Ticks < r.MaxTicks {
		if tick != nil {
			select {
			case <-ctx.Done():
				r.World.Stop()
			case <-tick:
			}
		} else if ctx.Err() != nil {
			r.World.Stop()
		}

		if r.Input != nil {
			r.World.SetControls(r.Input(sum.Ticks))
		}
		sum.Result = r.World.Step(r.Dt)
		if sum.Result.Status == StatusStopped {
			return sum
		}
		if r.OnTick != nil {
			r.OnTick(sum.Ticks, sum.Result)
		}
		sum.Ticks++
		if sum.Result.Status != StatusOngoing {
			return sum
		}
	}
	return sum
}
