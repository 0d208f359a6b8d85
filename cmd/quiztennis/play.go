package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quiz-tennis/internal/config"
	"github.com/vovakirdan/quiz-tennis/internal/core"
	"github.com/vovakirdan/quiz-tennis/internal/games/quiztennis"
	"github.com/vovakirdan/quiz-tennis/internal/platform/tui"
	"github.com/vovakirdan/quiz-tennis/internal/registry"
	"github.com/vovakirdan/quiz-tennis/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCategory   string
	flagQuestions  string
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a match",
	Long: `Start a match in the given mode (default: tennis, best of three sets).

Controls:
  Left/Right, A/D  - Move racket
  Space            - Serve / skip the point pause
  1-4              - Answer a question
  P                - Pause
  R                - Restart (after match over)
  B/Esc            - Leave (when paused or after match over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, forgiving opponent, fewer and longer questions
  normal - Values from the config file
  hard   - Faster ball, sharp opponent, more and shorter questions

Examples:
  quiztennis play
  quiztennis play tennis_quick
  quiztennis play --difficulty hard --category SQL
  quiztennis play --questions ./my-bank.yaml
  quiztennis play --config ./my-tennis.yaml --log ./match.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addMatchFlags(playCmd)
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write a debug match log to this file")
}

// addMatchFlags registers the flags that shape a match.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", difficultyUsage())
	cmd.Flags().StringVar(&flagCategory, "category", "", "Only ask questions from this category")
	cmd.Flags().StringVar(&flagQuestions, "questions", "", "Path to custom question bank YAML")
}

// difficultyUsage lists the presets in the --difficulty help text.
func difficultyUsage() string {
	names := make([]string, 0, len(config.Presets()))
	for _, p := range config.Presets() {
		names = append(names, string(p))
	}
	return "Difficulty preset: " + strings.Join(names, ", ")
}

// applyMatchFlags validates the match flags and hands them to the game.
func applyMatchFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}
	quiztennis.SetConfigPath(flagConfig)
	quiztennis.SetDifficultyPreset(flagDifficulty)
	quiztennis.SetCategory(flagCategory)
	quiztennis.SetQuestionsPath(flagQuestions)
	return nil
}

// openLogger opens a debug file logger. An empty path discards logs so
// nothing is written over the TUI.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "quiztennis",
	})
	return logger, func() { f.Close() }, nil
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Matches are still playable without
// it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := quiztennis.ModeIDMatch
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'quiztennis list' to see available modes.")
		os.Exit(1)
	}
	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}
	if err := applyMatchFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	quiztennis.SetLogger(logger)

	game, err := registry.Create(modeID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating match: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, logger, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
