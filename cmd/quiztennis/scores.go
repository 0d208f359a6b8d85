package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-tennis/internal/games/quiztennis"
	"github.com/vovakirdan/quiz-tennis/internal/registry"
	"github.com/vovakirdan/quiz-tennis/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores for the given mode (default: tennis).

A match scores 100 per set won, 10 per game won and 5 per correct answer.

Examples:
  quiztennis scores
  quiztennis scores tennis_quick --all
  quiztennis scores tennis --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagScoresAll   bool
	flagScoresClear bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and match history for the mode")
}

// loadScores returns the top 10 scores, or every score when all is set.
func loadScores(store *storage.Store, modeID string, all bool) ([]storage.ScoreEntry, error) {
	if all {
		return store.AllScores(modeID)
	}
	return store.TopScores(modeID, 10)
}

// resolveMode returns the mode named in args or the default, exiting on
// unknown modes.
func resolveMode(args []string) (id, title string) {
	id = quiztennis.ModeIDMatch
	if len(args) == 1 {
		id = args[0]
	}

	game, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'quiztennis list' to see available modes.")
		os.Exit(1)
	}
	return id, game.Title()
}

func runScores(_ *cobra.Command, args []string) {
	modeID, title := resolveMode(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and match history for %s.\n", title)
		return
	}

	scores, err := loadScores(store, modeID, flagScoresAll)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'quiztennis play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(modeID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Matches: %d  Won: %d  Average: %.0f  Answers: %d/%d\n",
			stats.GamesCount, stats.Wins, stats.AvgScore, stats.Correct, stats.Asked)
	}
}
