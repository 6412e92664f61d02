package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, tile, steps int }{
		{100, 16, 30},
		{50, 8, 20},
		{200, 32, 60},
	} {
		if _, err := store.SaveScore("2048", s.score, s.tile, s.steps); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("2048_mini", 500, 64, 90); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].MaxTile != 32 || scores[0].Steps != 60 {
		t.Errorf("Top entry = %+v, expected max tile 32 and 60 steps", scores[0])
	}

	mini, err := store.TopScores("2048_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(mini) != 1 {
		t.Errorf("Expected 1 mini score, got %d", len(mini))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100, 0, 0)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("2048", 100, 0, 0)
	store.SaveScore("2048", 300, 0, 0)
	store.SaveScore("2048", 200, 0, 0)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("2048")
	if err != nil || best != 0 {
		t.Fatalf("Best() on empty store = %d, %v; expected 0, nil", best, err)
	}

	for _, v := range []int{120, 80, 400, 300} {
		if err := store.SetBest("2048", v); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", v, err)
		}
	}

	best, err = store.Best("2048")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 400 {
		t.Errorf("Best() = %d, expected 400", best)
	}

	if other, _ := store.Best("2048_big"); other != 0 {
		t.Errorf("Best for another variant = %d, expected 0", other)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100, 0, 0)
	store.SaveScore("2048", 200, 0, 0)
	store.SetBest("2048", 200)
	store.SaveScore("2048_mini", 300, 0, 0)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("2048", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.Best("2048"); best != 0 {
		t.Errorf("Expected best 0 after clear, got %d", best)
	}
	if mini, _ := store.TopScores("2048_mini", 10); len(mini) != 1 {
		t.Error("Other variants should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100, 16, 10)
	store.SaveScore("2048", 300, 64, 30)
	store.SaveScore("2048_big", 50, 8, 5)

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 64 || stats.TotalSteps != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}

	empty, err := store.GetGameStats("2048_huge")
	if err != nil {
		t.Fatalf("GetGameStats() on empty variant failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["2048_big"].HighScore != 50 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.arcade/scores.db", filepath.Join(home, ".arcade", "scores.db")},
		{"~", home},
		{"/var/lib/scores.db", "/var/lib/scores.db"},
		{"~user/scores.db", "~user/scores.db"},
		{"scores.db", "scores.db"},
	}
	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("expandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBestStoreAdapter(t *testing.T) {
	store := openTestStore(t)
	var best engine.BestStore = NewBestStore(store, "2048")

	if v, err := best.LoadBest(); err != nil || v != 0 {
		t.Fatalf("LoadBest() on empty store = %d, %v", v, err)
	}

	// Falls back to history when no best was ever saved.
	store.SaveScore("2048", 700, 128, 90)
	if v, _ := best.LoadBest(); v != 700 {
		t.Errorf("LoadBest() = %d, expected 700 from history", v)
	}

	if err := best.SaveBest(900); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if v, _ := best.LoadBest(); v != 900 {
		t.Errorf("LoadBest() = %d, expected 900", v)
	}
}

func TestScoreRecorderAdapter(t *testing.T) {
	store := openTestStore(t)
	var sync engine.ScoreSync = NewScoreRecorder(store, "2048_mini")

	if err := sync.GameEnded(engine.GameResult{Score: 0}); err != nil {
		t.Fatalf("GameEnded() failed: %v", err)
	}
	if err := sync.GameEnded(engine.GameResult{Score: 1200, MaxTile: 128, Steps: 140}); err != nil {
		t.Fatalf("GameEnded() failed: %v", err)
	}

	scores, err := store.TopScores("2048_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 recorded game (zero scores skipped), got %d", len(scores))
	}
	if scores[0].Score != 1200 || scores[0].MaxTile != 128 || scores[0].Steps != 140 {
		t.Errorf("recorded = %+v", scores[0])
	}
}
