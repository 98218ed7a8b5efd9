package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagTimesLimit int
	flagTimesClear bool
)

var timesCmd = &cobra.Command{
	Use:   "times [level]",
	Short: "Show best completion times",
	Long: `Show the best completion times of one level, or a summary of every
level when no id is given. --clear deletes the times of the level.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTimes,
}

func init() {
	timesCmd.Flags().IntVarP(&flagTimesLimit, "limit", "n", 10, "Number of times to show")
	timesCmd.Flags().BoolVar(&flagTimesClear, "clear", false, "Delete the times of the given level")
}

func runTimes(cmd *cobra.Command, args []string) {
	s := newSession(false)

	store := s.openStore()
	if store == nil {
		fail("times database is not available")
	}
	defer store.Close()

	if len(args) == 0 {
		if flagTimesClear {
			fail("--clear needs a level id")
		}
		stats, err := store.AllLevelStats()
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("%-12s %-20s %5s %9s %9s\n", "ID", "NAME", "RUNS", "BEST", "AVERAGE")
		for _, info := range s.reg.List() {
			st, ok := stats[info.ID]
			if !ok {
				fmt.Printf("%-12s %-20s %5d %9s %9s\n", info.ID, info.Title, 0, "-", "-")
				continue
			}
			fmt.Printf("%-12s %-20s %5d %8.2fs %8.2fs\n", info.ID, info.Title, st.Runs, st.Best, st.Average)
		}
		return
	}

	id := args[0]
	if !s.reg.Exists(id) {
		fail("unknown level %q", id)
	}

	if flagTimesClear {
		if err := store.ClearTimes(id); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared times for %s\n", id)
		return
	}

	runs, err := store.BestTimes(id, flagTimesLimit)
	if err != nil {
		fail("%v", err)
	}
	if len(runs) == 0 {
		fmt.Printf("No times for %s yet\n", id)
		return
	}
	fmt.Printf("Best times for %s:\n", id)
	for i, r := range runs {
		fmt.Printf("%3d. %8.2fs  %s\n", i+1, r.Seconds, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
