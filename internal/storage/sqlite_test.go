package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/quiz-tennis/internal/core"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("tennis", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tennis", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tennis", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("tennis_quick", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for tennis
	scores, err := store.TopScores("tennis", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for quick
	quickScores, err := store.TopScores("tennis_quick", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(quickScores) != 1 {
		t.Errorf("Expected 1 quick score, got %d", len(quickScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("tennis")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("tennis", 100)
	store.SaveScore("tennis", 300)
	store.SaveScore("tennis", 200)

	high, err = store.HighScore("tennis")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tennis", 100)
	store.SaveScore("tennis", 200)
	store.SaveScore("tennis_quick", 300)

	// Clear only tennis scores
	err = store.ClearScores("tennis")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Tennis should be empty
	tennisScores, _ := store.TopScores("tennis", 10)
	if len(tennisScores) != 0 {
		t.Errorf("Expected 0 tennis scores after clear, got %d", len(tennisScores))
	}

	// Quick should still have scores
	quickScores, _ := store.TopScores("tennis_quick", 10)
	if len(quickScores) != 1 {
		t.Errorf("Quick scores should not be affected by clearing tennis")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSummary(winner string) core.MatchSummary {
	return core.MatchSummary{
		Winner:         winner,
		Sets:           []string{"6-4", "3-6", "7-6"},
		PlayerSets:     2,
		OpponentSets:   1,
		PointsWon:      98,
		PointsLost:     91,
		QuestionsAsked: 20,
		Correct:        15,
		Duration:       754 * time.Second,
	}
}

func TestStoreSaveMatch(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch("tennis", sampleSummary("player"), 375)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a uuid match ID, got %q", id)
	}

	rec, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("Saved match not found")
	}
	if rec.Winner != "player" || rec.Sets != "6-4 3-6 7-6" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.PlayerSets != 2 || rec.OpponentSets != 1 || rec.Score != 375 {
		t.Errorf("Unexpected sets or score: %+v", rec)
	}
	if rec.Duration != 754*time.Second {
		t.Errorf("Duration = %v, expected 12m34s", rec.Duration)
	}
	if rec.Accuracy() != 0.75 {
		t.Errorf("Accuracy() = %v, expected 0.75", rec.Accuracy())
	}

	missing, err := store.MatchByID("no-such-match")
	if err != nil {
		t.Fatalf("MatchByID() for a missing ID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for a missing match, got %+v", missing)
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 4; i++ {
		id, err := store.SaveMatch("tennis", sampleSummary("cpu"), i*10)
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
		ids = append(ids, id)
	}
	if _, err := store.SaveMatch("tennis_quick", sampleSummary("player"), 99); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	recent, err := store.RecentMatches("tennis", 3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches with limit, got %d", len(recent))
	}
	// Newest first
	if recent[0].ID != ids[3] || recent[2].ID != ids[1] {
		t.Errorf("Matches not newest first: %v", []string{recent[0].ID, recent[1].ID, recent[2].ID})
	}

	all, err := store.RecentMatches("", 0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 matches across modes, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tennis")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Accuracy() != 0 {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveMatch("tennis", sampleSummary("player"), 300)
	store.SaveMatch("tennis", sampleSummary("cpu"), 100)

	stats, err := store.GetGameStats("tennis")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 {
		t.Errorf("Expected 2 matches and 1 win, got %+v", stats)
	}
	if stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.Correct != 30 || stats.Asked != 40 {
		t.Errorf("Unexpected question stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScoresRemovesMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch("tennis", sampleSummary("player"), 300)
	if err := store.ClearScores("tennis"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	recent, _ := store.RecentMatches("tennis", 10)
	if len(recent) != 0 {
		t.Errorf("Expected matches cleared, got %d", len(recent))
	}
}
