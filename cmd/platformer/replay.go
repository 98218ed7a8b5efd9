package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/replay"
)

var (
	flagReplayLevel    string
	flagReplayRealtime bool
	flagReplayVerbose  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a scripted input file without a terminal",
	Long: `Play a YAML input script against a level and print the outcome.
Exits with status 1 when the outcome differs from the script's expect field.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayLevel, "level", "", "Override the level of the script")
	replayCmd.Flags().BoolVar(&flagReplayRealtime, "realtime", false, "Pace ticks at wall-clock speed")
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Log every tick")
}

func runReplay(cmd *cobra.Command, args []string) {
	s := newSession(false)

	script, err := replay.Load(args[0])
	if err != nil {
		fail("%v", err)
	}
	if flagReplayLevel != "" {
		script.Level = flagReplayLevel
	}
	if script.Level == "" {
		script.Level = s.loader.First()
	}

	lvl, err := s.loader.Load(script.Level)
	if err != nil {
		fail("%v", err)
	}
	seed := script.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	world, err := core.NewWorld(lvl, platformer.SettingsFromConfig(s.cfg),
		core.WithLogger(s.logger),
		core.WithSeed(seed))
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := replay.Options{TickRate: s.cfg.Screen.TickRate, Realtime: flagReplayRealtime}
	if flagReplayVerbose {
		opts.OnTick = func(tick int, r core.TickResult) {
			p := world.Player()
			s.logger.Debug("tick", "n", tick, "x", p.X, "y", p.Y, "status", r.Status)
		}
	}

	res := replay.Run(ctx, script, world, opts)
	fmt.Printf("level %s: %s after %d ticks (%.2fs), %d coins left\n",
		script.Level, res.Status, res.Ticks, res.Elapsed, res.CoinsLeft)
	if !res.Met {
		stop()
		fmt.Fprintf(os.Stderr, "expected %s, got %s\n", script.Expect, res.Status)
		os.Exit(1)
	}
}
