package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/quiz-tennis/internal/storage"
)

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:2200":     "2200",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}

func TestApplyMatchFlagsRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "impossible"
	t.Cleanup(func() { flagDifficulty = "" })

	if err := applyMatchFlags(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil || logger != nil {
		t.Fatalf("empty path should disable logging, got %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "match.log")
	logger, closeLog, err = openLogger(path)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Debug("point", "winner", "player")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Error("debug entries should reach the log file")
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"list", "play", "menu", "scores", "history", "questions", "serve"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestDifficultyUsageListsPresets(t *testing.T) {
	usage := difficultyUsage()
	for _, name := range []string{"easy", "normal", "hard"} {
		if !strings.Contains(usage, name) {
			t.Errorf("difficulty help %q should mention %q", usage, name)
		}
	}
	if f := playCmd.Flags().Lookup("difficulty"); f == nil || f.Usage != usage {
		t.Error("play --difficulty should use the preset list as help")
	}
}

func TestLoadScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore("tennis", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := loadScores(store, "tennis", false)
	if err != nil || len(top) != 10 {
		t.Fatalf("top scores: got %d entries, err %v", len(top), err)
	}
	if top[0].Score != 120 {
		t.Errorf("best score = %d, expected 120", top[0].Score)
	}

	all, err := loadScores(store, "tennis", true)
	if err != nil || len(all) != 12 {
		t.Errorf("--all: got %d entries, err %v", len(all), err)
	}
}

func TestScoresFlagsRegistered(t *testing.T) {
	for _, name := range []string{"all", "clear"} {
		if scoresCmd.Flags().Lookup(name) == nil {
			t.Errorf("scores --%s not registered", name)
		}
	}
}
