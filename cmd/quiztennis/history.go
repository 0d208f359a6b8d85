package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-tennis/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show recent matches",
	Long: `List the most recent finished matches of a mode (default: tennis),
newest first.

Examples:
  quiztennis history
  quiztennis history tennis_quick --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
}

func runHistory(_ *cobra.Command, args []string) {
	modeID, title := resolveMode(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(modeID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}

	fmt.Printf("Recent Matches - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-14s  %-9s  %-6s  %s\n", "Date", "Result", "Sets", "Answers", "Score", "Time")
	fmt.Printf("  %-16s  %-6s  %-14s  %-9s  %-6s  %s\n", "----", "------", "----", "-------", "-----", "----")

	for _, r := range matches {
		result := "Lost"
		if r.Winner == "player" {
			result = "Won"
		}
		answers := fmt.Sprintf("%d/%d", r.Correct, r.QuestionsAsked)
		fmt.Printf("  %-16s  %-6s  %-14s  %-9s  %-6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), result, r.Sets, answers, r.Score,
			r.Duration.Round(time.Second))
	}
}
