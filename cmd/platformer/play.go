package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Play a level directly. Without an argument the first level of the pack
is played. Use 'platformer levels list' to see the level ids.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s := newSession(true)
	defer s.closeLog()

	id := s.loader.First()
	if len(args) > 0 {
		id = args[0]
	}
	if !s.reg.Exists(id) {
		fail("unknown level %q\nRun 'platformer levels list' to see available levels", id)
	}

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	if err := s.play(id, store); err != nil {
		fail("%v", err)
	}
}

// play runs one level (and the ones after it, via "next") in the terminal.
func (s *session) play(id string, store *storage.Store) error {
	game, err := s.reg.Create(id)
	if err != nil {
		return err
	}
	final, err := tui.Run(game, s.runtimeConfig(), tui.Options{
		Store:  store,
		Logger: s.logger,
		Hold:   time.Duration(s.cfg.Render.HoldMillis) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	if final.Complete {
		fmt.Fprintf(os.Stdout, "Level complete in %.2fs\n", final.Elapsed)
	}
	return nil
}
