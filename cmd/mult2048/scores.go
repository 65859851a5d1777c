package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mult2048/internal/platform/tui"
	"github.com/vovakirdan/mult2048/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game mode.

Examples:
  mult2048 scores
  mult2048 scores endless
  mult2048 scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := "campaign"
	if len(args) > 0 {
		mode = args[0]
	}

	var bucketID, title string
	switch mode {
	case "campaign":
		bucketID, title = "mult2048", "Campaign"
	case "endless":
		bucketID, title = "mult2048_endless", "Endless"
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want campaign or endless)\n", mode)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if _, tuiErr := tui.RunScoreboard(store, width, height); tuiErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", tuiErr)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(bucketID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mult2048 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(bucketID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
