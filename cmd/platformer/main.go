// platformer is a tile-based platformer that runs in the terminal.
//
// Usage:
//
//	platformer play [level]        - Play a level (default: the first one)
//	platformer menu                - Pick levels interactively
//	platformer levels list         - List the levels of the pack
//	platformer levels check        - Validate every level file
//	platformer times [level]       - Show best completion times
//	platformer replay <script>     - Run a scripted input file headlessly
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible coin timing
//	--db <path>         - Set database path (default: ~/.platformer/times.db)
//	--config <path>     - Use a custom config YAML
//	--levels <dir>      - Use a level pack directory instead of the built-in one
//	--difficulty <name> - easy, normal or hard
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer - collect the coins, reach the exit",
	Long: `A tile-based platformer for the terminal.

Collect every coin of a level to open its exit, then reach the exit.
Ladders can be climbed, grey walls crumble shortly after you step on them.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List or validate the level pack
  times    - View best completion times
  replay   - Run a scripted input file without a terminal

Examples:
  platformer play
  platformer play tower --difficulty easy
  platformer menu --levels ./my-levels
  platformer levels check --levels ./my-levels
  platformer replay run.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run times database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level pack directory (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(replayCmd)
}
