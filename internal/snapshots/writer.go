package snapshots

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/timeutil"
)

const defaultRetentionDays = 14

// Writer persists snapshots and the manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// Archive writes today's snapshot from one refresh.
func (w *Writer) Archive(roster []players.Player, noteSet []notes.Note, vids []videos.Video) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	return w.Write(Snapshot{
		Date:    timeutil.FormatDate(w.now()),
		Players: roster,
		Notes:   noteSet,
		Videos:  vids,
	})
}

// Write stores snap under its date and prunes snapshots older than the
// retention window. Rows are ordered by ID so an unchanged roster rewrites
// nothing.
func (w *Writer) Write(snap Snapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if snap.Date == "" {
		return fmt.Errorf("date required")
	}
	snap.Players = slices.SortedFunc(slices.Values(snap.Players), func(a, b players.Player) int { return cmp.Compare(a.ID, b.ID) })
	snap.Notes = slices.SortedFunc(slices.Values(snap.Notes), func(a, b notes.Note) int { return cmp.Compare(a.ID, b.ID) })
	snap.Videos = slices.SortedFunc(slices.Values(snap.Videos), func(a, b videos.Video) int { return cmp.Compare(a.ID, b.ID) })

	target := SnapshotPath(w.basePath, snap.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmp, target); err != nil {
			return err
		}
	}

	return w.updateManifest(snap.Date, len(snap.Players))
}

func (w *Writer) updateManifest(date string, playerCount int) error {
	m, _ := readManifest(manifestPath(w.basePath), w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !slices.Contains(dates, date) {
		dates = append(dates, date)
	}

	m.Roster.Dates = w.prune(dates)
	m.Roster.LastRefreshed = w.now()
	m.Roster.Players = playerCount
	m.Retention.Days = w.retentionDays
	return writeManifest(w.basePath, m)
}

func (w *Writer) listDates() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, rosterDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	slices.Sort(dates)
	return dates, nil
}

// prune deletes dated snapshots before the retention cutoff. Files whose
// names are not dates are left alone.
func (w *Writer) prune(dates []string) []string {
	now := w.now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err == nil && parsed.Before(cutoff) {
			_ = os.Remove(SnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	slices.Sort(keep)
	return keep
}
