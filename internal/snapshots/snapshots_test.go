package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pressbox-service/internal/testutil"
)

// pinClock fixes the retention clock so prune decisions do not depend on
// the wall clock during the test.
func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	old := nowUTC
	nowUTC = func() time.Time { return at }
	t.Cleanup(func() { nowUTC = old })
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	pinClock(t, time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC))
	snap := testutil.SampleTodayResponse("2025-10-12", "game-1")

	if err := w.WriteGamesSnapshot("2025-10-12", snap); err != nil {
		t.Fatalf("WriteGamesSnapshot returned error: %v", err)
	}

	loaded, err := NewFSStore(dir).LoadGames("2025-10-12")
	if err != nil {
		t.Fatalf("LoadGames returned error: %v", err)
	}
	if loaded.Date != "2025-10-12" {
		t.Fatalf("unexpected date %q", loaded.Date)
	}
	if len(loaded.Games) != 1 || loaded.Games[0].ID != "game-1" {
		t.Fatalf("unexpected games %+v", loaded.Games)
	}
}

func TestWriteSortsGamesByID(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	pinClock(t, time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC))

	snap := testutil.SampleTodayResponse("2025-10-12", "zzz")
	snap.Games = append(snap.Games, testutil.SampleGame("aaa"))

	if err := w.WriteGamesSnapshot("2025-10-12", snap); err != nil {
		t.Fatalf("WriteGamesSnapshot returned error: %v", err)
	}

	loaded, err := NewFSStore(dir).LoadGames("2025-10-12")
	if err != nil {
		t.Fatalf("LoadGames returned error: %v", err)
	}
	if loaded.Games[0].ID != "aaa" || loaded.Games[1].ID != "zzz" {
		t.Fatalf("expected sorted games, got %+v", loaded.Games)
	}
}

func TestWriteSkipsUnchangedPayload(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	pinClock(t, time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC))
	snap := testutil.SampleTodayResponse("2025-10-12", "game-1")

	if err := w.WriteGamesSnapshot("2025-10-12", snap); err != nil {
		t.Fatalf("first write errored: %v", err)
	}

	target := filepath.Join(dir, "games", "2025-10-12.json")
	before, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := w.WriteGamesSnapshot("2025-10-12", snap); err != nil {
		t.Fatalf("second write errored: %v", err)
	}

	after, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("expected unchanged payload to skip rewrite")
	}
}

func TestPruneRemovesOldSnapshots(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 7)

	pinClock(t, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))
	stale := testutil.SampleTodayResponse("2025-09-01", "old-game")
	if err := w.WriteGamesSnapshot("2025-09-01", stale); err != nil {
		t.Fatalf("stale write errored: %v", err)
	}

	// Six weeks later the September snapshot is past the retention window.
	pinClock(t, time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC))
	fresh := testutil.SampleTodayResponse("2025-10-12", "new-game")
	if err := w.WriteGamesSnapshot("2025-10-12", fresh); err != nil {
		t.Fatalf("fresh write errored: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "games", "2025-09-01.json")); !os.IsNotExist(err) {
		t.Fatalf("expected stale snapshot pruned, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "games", "2025-10-12.json")); err != nil {
		t.Fatalf("expected fresh snapshot kept: %v", err)
	}
}

func TestLoadGamesMissingDate(t *testing.T) {
	store := NewFSStore(t.TempDir())

	if _, err := store.LoadGames("2025-01-01"); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
	if _, err := store.LoadGames(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}
