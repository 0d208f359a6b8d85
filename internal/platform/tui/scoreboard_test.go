package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiz-tennis/internal/core"
	_ "github.com/vovakirdan/quiz-tennis/internal/games/quiztennis" // Register modes
	"github.com/vovakirdan/quiz-tennis/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMatchRows(t *testing.T) {
	rows := matchRows([]storage.MatchRecord{
		{Winner: "player", Sets: "6-4 6-3", Correct: 7, QuestionsAsked: 9, Score: 245, Duration: 95 * time.Second},
		{Winner: "cpu", Sets: "2-6 1-6", Score: 30, Duration: 4 * time.Minute},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"Won", "6-4 6-3", "7/9", "245", "1:35"}
	if got := rows[0][1:]; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("row = %v, expected %v", got, want)
	}
	if rows[1][1] != "Lost" || rows[1][5] != "4:00" {
		t.Errorf("row = %v", rows[1])
	}
}

func TestScoreboardShowsMatches(t *testing.T) {
	store := openStore(t)
	sum := core.MatchSummary{
		Winner: "player", Sets: []string{"6-4", "7-6"}, PlayerSets: 2,
		QuestionsAsked: 10, Correct: 8, Duration: 10 * time.Minute,
	}
	if _, err := store.SaveMatch("tennis", sum, 270); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	m := NewScoreboardModel(store, 120, 30)
	view := m.View()
	for _, want := range []string{"MATCH HISTORY - Quiz Tennis", "6-4 7-6", "Won", "Played 1", "Answers 8/10 (80%)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	// The one-set mode has no matches yet
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No matches recorded yet.") {
		t.Errorf("expected empty history for the quick mode:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestScoreboardNarrowWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	view := m.View()
	if !strings.Contains(view, "tennis_quick") {
		t.Errorf("narrow layout should show mode tabs:\n%s", view)
	}
	if !strings.Contains(view, "No matches recorded yet.") {
		t.Errorf("expected empty message without a store:\n%s", view)
	}
}

func TestMenuSelection(t *testing.T) {
	store := openStore(t)
	store.SaveScore("tennis_quick", 120)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "(best 120)") {
		t.Errorf("menu should show the high score:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().GameID != "tennis_quick" {
		t.Fatalf("selected = %+v, expected tennis_quick", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should leave the menu")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the match history")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}
