package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLoadEmptyProfile(t *testing.T) {
	store := openTemp(t)

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if d != (core.SaveData{}) {
		t.Errorf("Load() = %+v, want zero profile", d)
	}
}

func TestSaveAndLoadProfile(t *testing.T) {
	store := openTemp(t)

	if err := store.Save(core.SaveData{HighScore: 53, Credits: 10}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(core.SaveData{HighScore: 80, Credits: 12}); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := core.SaveData{HighScore: 80, Credits: 12}
	if d != want {
		t.Errorf("Load() = %+v, want %+v", d, want)
	}
}

func TestProfileSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Save(core.SaveData{HighScore: 7, Credits: 3}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if d.HighScore != 7 || d.Credits != 3 {
		t.Errorf("Load() after reopen = %+v", d)
	}
}

func TestRecordAndRankRuns(t *testing.T) {
	store := openTemp(t)

	runs := []struct{ score, credits int }{{100, 20}, {50, 10}, {200, 0}, {75, 15}}
	for _, r := range runs {
		if err := store.RecordRun(r.score, r.credits); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	want := []int{200, 100, 75}
	if len(top) != len(want) {
		t.Fatalf("TopRuns() returned %d entries, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("TopRuns()[%d].Score = %d, want %d", i, top[i].Score, w)
		}
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Score != 75 || recent[0].CreditsEarned != 15 {
		t.Errorf("RecentRuns(1) = %+v, want the last run", recent)
	}
}

func TestStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty db failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.RecordRun(10, 2)
	store.RecordRun(30, 6)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 30 || stats.AvgScore != 20 || stats.TotalCredits != 8 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestClearRunsKeepsProfile(t *testing.T) {
	store := openTemp(t)
	store.Save(core.SaveData{HighScore: 9, Credits: 1})
	store.RecordRun(9, 1)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("TopRuns() after clear = %d entries", len(top))
	}
	d, _ := store.Load()
	if d.HighScore != 9 {
		t.Error("ClearRuns should not touch the profile")
	}
}
