package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Open the level picker. Each level shows its best time.

Controls:
  Up/Down or W/S - Navigate
  Enter/Space    - Play selected level
  Tab            - Open the times board
  Q/Esc          - Quit`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	s := newSession(true)
	defer s.closeLog()

	store := s.openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		res, err := tui.RunMenu(s.reg, store, s.runtimeConfig())
		if err != nil {
			fail("%v", err)
		}
		switch {
		case res.Quit:
			return
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(s.reg, store, res.Config.ScreenW, res.Config.ScreenH)
			if err != nil {
				fail("%v", err)
			}
			if !back {
				return
			}
		default:
			if err := s.play(res.LevelID, store); err != nil {
				fail("%v", err)
			}
		}
	}
}
