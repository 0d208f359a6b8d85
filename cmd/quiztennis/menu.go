package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-tennis/internal/platform/tui"
	"github.com/vovakirdan/quiz-tennis/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a match mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a match.
After a match ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start match
  Tab          - Match history
  Q            - Quit

Examples:
  quiztennis menu
  quiztennis menu --difficulty easy
  quiztennis menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addMatchFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyMatchFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating match: %v\n", err)
			continue
		}

		// New seed for each match unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, nil, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
