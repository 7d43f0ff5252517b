package storage

import (
	"bytes"
	"encoding/csv"
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

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Difficulty: "normal", Score: 4, Outcome: "lost", Ticks: 900, Seed: 1},
		{Difficulty: "normal", Score: 10, Outcome: "won", Ticks: 3000, Seed: 2},
		{Difficulty: "normal", Score: 10, Outcome: "won", Ticks: 2000, Seed: 3},
		{Difficulty: "hard", Score: 2, Outcome: "lost", Ticks: 300, Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 normal runs, got %d", len(top))
	}
	// Equal scores rank the faster run first.
	if top[0].Seed != 3 || top[1].Seed != 2 || top[2].Seed != 1 {
		t.Errorf("Unexpected order: %+v", top)
	}
	if top[0].Ticks != 2000 || top[0].Outcome != "won" {
		t.Errorf("Fields not round-tripped: %+v", top[0])
	}

	limited, _ := store.TopRuns("normal", 1)
	if len(limited) != 1 {
		t.Errorf("Expected limit of 1, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveRun(Run{Difficulty: "normal", Score: 3, Outcome: "lost"})
	store.SaveRun(Run{Difficulty: "normal", Score: 7, Outcome: "lost"})
	store.SaveRun(Run{Difficulty: "easy", Score: 10, Outcome: "won"})

	high, _ = store.HighScore("normal")
	if high != 7 {
		t.Errorf("Expected high score of 7, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("hard")
	if err != nil {
		t.Fatalf("Stats() on empty failed: %v", err)
	}
	if empty.Games != 0 || empty.FastestWin != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected empty stats: %+v", empty)
	}

	store.SaveRun(Run{Difficulty: "hard", Score: 10, Outcome: "won", Ticks: 5000})
	store.SaveRun(Run{Difficulty: "hard", Score: 10, Outcome: "won", Ticks: 4000})
	store.SaveRun(Run{Difficulty: "hard", Score: 1, Outcome: "lost", Ticks: 100})

	stats, err := store.Stats("hard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 || stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("Counts wrong: %+v", stats)
	}
	if stats.BestScore != 10 || stats.AvgScore != 7 {
		t.Errorf("Scores wrong: %+v", stats)
	}
	if stats.FastestWin != 4000 {
		t.Errorf("FastestWin = %d, want 4000", stats.FastestWin)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "easy", Score: 1, Outcome: "lost"})
	store.SaveRun(Run{Difficulty: "hard", Score: 2, Outcome: "lost"})

	if err := store.ClearRuns("easy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	easy, _ := store.TopRuns("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(easy))
	}
	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard runs should not be affected by clearing easy")
	}
}

func TestStoreExportCSV(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "easy", Score: 10, Outcome: "won", Ticks: 1200, Seed: 42})
	store.SaveRun(Run{Difficulty: "hard", Score: 0, Outcome: "lost", Ticks: 60, Seed: -7})

	var buf bytes.Buffer
	if err := store.ExportCSV(&buf); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(records))
	}
	header := records[0]
	want := []string{"id", "difficulty", "score", "outcome", "ticks", "seed", "created_at"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}
	if records[1][1] != "easy" || records[1][2] != "10" || records[1][5] != "42" {
		t.Errorf("first row = %v", records[1])
	}
	if records[2][3] != "lost" || records[2][5] != "-7" {
		t.Errorf("second row = %v", records[2])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

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
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in, want string
	}{
		{"~/.ducks/ducks.db", filepath.Join(home, ".ducks", "ducks.db")},
		{"/tmp/ducks.db", "/tmp/ducks.db"},
		{"runs.db", "runs.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
