// mult2048 is a terminal 2048 variant with multiplier tiles.
//
// Usage:
//
//	mult2048 play            - Play in the terminal
//	mult2048 list            - List registered games
//	mult2048 scores          - Show high scores
//	mult2048 serve           - Start SSH server for remote play
//	mult2048 step            - Apply one move to a board (JSON in/out)
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mult2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/mult2048/internal/games/mult2048"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mult2048",
	Short: "2048 with multiplier tiles in your terminal",
	Long: `mult2048 is a terminal take on 2048 where multiplier tiles (x1, x2, x4)
spawn alongside the usual numbers and can merge into them.

Available commands:
  play     - Play in the terminal
  list     - Show registered games
  scores   - View high scores
  serve    - Start SSH server for remote play
  step     - Apply one move to a board (JSON in/out)

Examples:
  mult2048 play
  mult2048 play --mode endless --seed 42
  mult2048 scores endless
  mult2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mult2048/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stepCmd)
}
