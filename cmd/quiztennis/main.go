// quiztennis is a terminal tennis game where a wrong quiz answer costs you
// the point.
//
// Usage:
//
//	quiztennis list                 - List match modes
//	quiztennis play [mode]          - Play a match
//	quiztennis menu                 - Pick a mode interactively
//	quiztennis scores [mode]        - Show high scores
//	quiztennis history [mode]       - Show recent matches
//	quiztennis questions list       - Show question categories
//	quiztennis questions validate   - Check a question bank file
//	quiztennis serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.quiztennis/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/quiz-tennis/internal/games/quiztennis"
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
	Use:   "quiztennis",
	Short: "Quiz Tennis - tennis in your terminal, with questions",
	Long: `Quiz Tennis is a terminal tennis match against a CPU opponent.
Whenever the ball crosses the net toward you a question may appear and lock
your racket. Answer correctly to play on; a wrong answer or a timeout gives
the point away.

Available commands:
  list       - Show match modes
  play       - Play a match directly
  menu       - Interactive mode picker
  scores     - View high scores
  history    - View recent matches
  questions  - Inspect or validate question banks
  serve      - Start SSH server for remote play

Examples:
  quiztennis play
  quiztennis play tennis_quick --difficulty hard
  quiztennis play --category Python
  quiztennis menu
  quiztennis serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quiztennis/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(questionsCmd)
}
