package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-tennis/internal/questions"
)

var flagBankPath string

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect question banks",
	Long: `Inspect the question bank used for matches.

The bank is loaded from --questions, then ~/.quiztennis/questions.yaml,
then ./configs/questions.yaml, then the built-in bank.

Examples:
  quiztennis questions list
  quiztennis questions validate ./my-bank.yaml`,
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List question categories",
	Args:  cobra.NoArgs,
	Run:   runQuestionsList,
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a question bank file",
	Long: `Check that every question has a category, a prompt, four distinct
choices and an answer index between 0 and 3, and that no prompt repeats.`,
	Args: cobra.ExactArgs(1),
	Run:  runQuestionsValidate,
}

func init() {
	questionsListCmd.Flags().StringVar(&flagBankPath, "questions", "", "Path to custom question bank YAML")
	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsValidateCmd)
}

func runQuestionsList(_ *cobra.Command, _ []string) {
	bank, err := questions.Load(flagBankPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	counts := questions.CountByCategory(bank)
	categories := questions.Categories(bank)

	maxLen := len("Category")
	for _, c := range categories {
		maxLen = max(maxLen, len(c))
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Category", "Questions")
	fmt.Printf("  %-*s  %s\n", maxLen, "--------", "---------")
	for _, c := range categories {
		fmt.Printf("  %-*s  %d\n", maxLen, c, counts[c])
	}
	fmt.Println()
	fmt.Printf("%d questions. Use 'quiztennis play --category <name>' to pick one.\n", len(bank))
}

func runQuestionsValidate(_ *cobra.Command, args []string) {
	bank, err := questions.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d questions in %d categories, OK\n", args[0], len(bank), len(questions.Categories(bank)))
}
