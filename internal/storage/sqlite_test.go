package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func mustSave(t *testing.T, store *Store, rec ScoreRecord) int64 {
	t.Helper()
	id, err := store.SaveScore(rec)
	if err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", rec, err)
	}
	return id
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 1230, Level: 2})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("pacman")
	if err != nil || high != 1230 {
		t.Errorf("HighScore after reopen = %d, %v", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "a", Score: 100, Level: 1, Difficulty: "normal"})
	mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "b", Score: 50, Level: 1, Difficulty: "hard"})
	mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "c", Score: 200, Level: 3, Difficulty: "normal"})
	mustSave(t, store, ScoreRecord{GameID: "pacman_classic", RunID: "d", Score: 500})

	scores, err := store.TopScores("pacman", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	top := scores[0]
	if top.RunID != "c" || top.Level != 3 || top.Difficulty != "normal" || top.GameID != "pacman" {
		t.Errorf("top entry = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	classic, err := store.TopScores("pacman_classic", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 || classic[0].Level != 1 {
		t.Errorf("classic scores = %+v", classic)
	}
}

func TestStoreTopScoresFilters(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		difficulty := "normal"
		if i%2 == 1 {
			difficulty = "hard"
		}
		mustSave(t, store, ScoreRecord{GameID: "pacman", Score: (i + 1) * 100, Difficulty: difficulty})
	}

	testCases := []struct {
		name       string
		difficulty string
		limit      int
		want       []int
	}{
		{"limit", "", 3, []int{500, 400, 300}},
		{"default limit", "", 0, []int{500, 400, 300, 200, 100}},
		{"normal only", "normal", 10, []int{500, 300, 100}},
		{"hard only", "hard", 1, []int{400}},
		{"unknown difficulty", "chaos", 10, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("pacman", tc.difficulty, tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tc.want) {
				t.Fatalf("got %d scores, want %d", len(scores), len(tc.want))
			}
			for i, want := range tc.want {
				if scores[i].Score != want {
					t.Errorf("score %d = %d, want %d", i, scores[i].Score, want)
				}
			}
		})
	}
}

func TestStoreTiesOrderedByLevel(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "low", Score: 300, Level: 1})
	mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "high", Score: 300, Level: 4})

	scores, err := store.TopScores("pacman", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].RunID != "high" {
		t.Errorf("tie broken by %q, want deeper level first", scores[0].RunID)
	}
}

func TestStoreSaveRunOnce(t *testing.T) {
	store := openTestStore(t)

	first := mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "run-1", Score: 100})
	again := mustSave(t, store, ScoreRecord{GameID: "pacman", RunID: "run-1", Score: 999})
	if first != again {
		t.Errorf("second save of a run got id %d, want %d", again, first)
	}

	// Runs without an id are always inserted.
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 10})
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 10})

	all, err := store.AllScores("pacman")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(all))
	}
	if all[0].Score != 100 {
		t.Errorf("duplicate run overwrote score: %d", all[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 300})
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 200})

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 200})
	mustSave(t, store, ScoreRecord{GameID: "pacman_classic", Score: 300})

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("pacman", "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	classic, _ := store.TopScores("pacman_classic", "", 10)
	if len(classic) != 1 {
		t.Errorf("classic scores should not be affected by clearing pacman")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 100, Level: 2})
	mustSave(t, store, ScoreRecord{GameID: "pacman", Score: 300, Level: 5})
	mustSave(t, store, ScoreRecord{GameID: "pacman_classic", Score: 40})

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.MaxLevel != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg %v total %d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["pacman_classic"].HighScore != 40 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
