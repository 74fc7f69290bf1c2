// Package storage persists the leaderboard as a single JSON record file.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
)

// Leaderboard is a flat-file score store. Load of a missing or unreadable
// file yields an empty list; every Add rewrites the whole sorted list
// through a temp file and rename, so readers never observe a partial
// write.
type Leaderboard struct {
	path string
}

func NewLeaderboard(path string) *Leaderboard { return &Leaderboard{path: path} }

// sortRecords orders by score descending, then time ascending.
func sortRecords(recs []domain.ScoreRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].TimeSec < recs[j].TimeSec
	})
}

// load returns the stored records. A store that is missing, unreadable,
// or mangled counts as an empty leaderboard; the next save rewrites it.
func (l *Leaderboard) load() []domain.ScoreRecord {
	b, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var recs []domain.ScoreRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil
	}
	return recs
}

func (l *Leaderboard) write(recs []domain.ScoreRecord) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, l.path)
}

// Add appends a record and rewrites the store in rank order.
func (l *Leaderboard) Add(ctx context.Context, rec domain.ScoreRecord) error {
	recs := append(l.load(), rec)
	sortRecords(recs)
	return l.write(recs)
}

// Top returns the best n records (all of them when n <= 0).
func (l *Leaderboard) Top(ctx context.Context, n int) ([]domain.ScoreRecord, error) {
	recs := l.load()
	sortRecords(recs) // tolerate hand-edited files
	if n > 0 && len(recs) > n {
		recs = recs[:n]
	}
	return recs, nil
}
