package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect the level pack",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels in play order",
	Run:   runLevelsList,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every level and report problems",
	Long: `Load every level of the pack and print its size and tile counts.
Exits with status 1 if any level fails to load.`,
	Run: runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var listCellStyle = lipgloss.NewStyle().Padding(0, 1)

func runLevelsList(cmd *cobra.Command, args []string) {
	s := newSession(false)
	fmt.Println(levelTable(s.loader.Entries()))
}

// levelTable renders the pack entries in play order.
func levelTable(entries []levels.Entry) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "PAR", "SOURCE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return listCellStyle
		})
	for _, e := range entries {
		par := "-"
		if e.ParTime > 0 {
			par = fmt.Sprintf("%.0fs", e.ParTime)
		}
		t.Row(e.ID, e.Name, par, e.Source)
	}
	return t
}

func runLevelsCheck(cmd *cobra.Command, args []string) {
	s := newSession(false)

	failed := 0
	for _, r := range s.loader.Check() {
		if r.Err != nil {
			failed++
			fmt.Printf("FAIL %-12s %v\n", r.Entry.ID, r.Err)
			continue
		}
		st := r.Level.Stats()
		fmt.Printf("ok   %-12s %dx%d  coins %d  walls %d  crumbling %d  ladders %d\n",
			r.Entry.ID, r.Level.W, r.Level.H,
			st.Counts[core.KindCoin], st.Counts[core.KindWall],
			st.Counts[core.KindCrumblingWall], st.Counts[core.KindLadders])
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels failed\n", failed, len(s.loader.Entries()))
		os.Exit(1)
	}
}
