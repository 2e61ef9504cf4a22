package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/timeutil"
)

// Store defines how game snapshots are loaded.
type Store interface {
	LoadGames(date string) (domain.TodayResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadGames reads a snapshot for the given date (YYYY-MM-DD) from disk.
// Files live at {basePath}/games/{date}.json with a TodayResponse payload.
func (s *FSStore) LoadGames(date string) (domain.TodayResponse, error) {
	if s == nil {
		return domain.TodayResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domain.TodayResponse{}, errors.New("snapshot date required")
	}

	var payload domain.TodayResponse
	f, err := os.Open(gamesPath(s.basePath, date))
	if err != nil {
		return domain.TodayResponse{}, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.TodayResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// Writer persists daily snapshots with rolling retention.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGamesSnapshot writes the games snapshot for the given date (YYYY-MM-DD)
// and prunes snapshots older than the retention window. Writes are atomic
// (tmp file + rename) and skipped when the payload is unchanged.
func (w *Writer) WriteGamesSnapshot(date string, snapshot domain.TodayResponse) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.Games, func(i, j int) bool {
		return snapshot.Games[i].ID < snapshot.Games[j].ID
	})

	target := gamesPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.prune()
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.prune()
}

func (w *Writer) prune() error {
	dir := filepath.Join(w.basePath, "games")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := timeutil.StartOfDay(nowUTC()).AddDate(0, 0, -w.retentionDays)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		date := e.Name()[:len(e.Name())-len(".json")]
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
	return nil
}

// nowUTC is a seam for retention tests.
var nowUTC = func() time.Time { return time.Now().UTC() }

func gamesPath(basePath, date string) string {
	return filepath.Join(basePath, "games", date+".json")
}
