package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mult2048/internal/core"
	"github.com/vovakirdan/mult2048/internal/games/mult2048"
	"github.com/vovakirdan/mult2048/internal/platform/tui"
	"github.com/vovakirdan/mult2048/internal/registry"
	"github.com/vovakirdan/mult2048/internal/storage"
)

var (
	flagConfig string
	flagMode   string
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game session.

Controls:
  Arrows/WASD/HJKL - Move tiles
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save screenshot

Without --mode, an interactive mode selector is shown.

Examples:
  mult2048 play
  mult2048 play --mode endless
  mult2048 play --mode campaign --level 3
  mult2048 play --seed 42 --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: campaign or endless (default: ask)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	mult2048.SetConfigPath(flagConfig)

	switch flagMode {
	case "campaign":
		mult2048.SetMode(mult2048.ModeCampaign)
		mult2048.SetStartLevel(flagLevel)
	case "endless":
		mult2048.SetMode(mult2048.ModeEndless)
		mult2048.SetStartLevel(0)
	case "":
		selection, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		mult2048.SetMode(selection.Mode)
		mult2048.SetStartLevel(selection.Level)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want campaign or endless)\n", flagMode)
		os.Exit(1)
	}

	game, err := registry.Create("mult2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
