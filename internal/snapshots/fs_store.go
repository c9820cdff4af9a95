package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Load reads the snapshot for the given date (YYYY-MM-DD).
func (s *FSStore) Load(date string) (Snapshot, error) {
	if s == nil {
		return Snapshot{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return Snapshot{}, errors.New("snapshot date required")
	}
	var snap Snapshot
	if err := decodeFile(SnapshotPath(s.basePath, date), &snap); err != nil {
		return Snapshot{}, err
	}
	if snap.Date == "" {
		snap.Date = date
	}
	return snap, nil
}

// Latest loads the newest snapshot listed in the manifest, skipping dates
// whose files have gone missing.
func (s *FSStore) Latest() (Snapshot, error) {
	if s == nil {
		return Snapshot{}, errors.New("snapshot store not configured")
	}
	m, err := readManifest(manifestPath(s.basePath), 0)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, err
	}
	for i := len(m.Roster.Dates) - 1; i >= 0; i-- {
		snap, err := s.Load(m.Roster.Dates[i])
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return snap, err
	}
	return Snapshot{}, ErrNoSnapshot
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
