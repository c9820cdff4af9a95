package snapshots

import (
	"fmt"
	"path/filepath"
)

const rosterDir = "roster"

// SnapshotPath builds the path to the snapshot for a given date.
func SnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, rosterDir, fmt.Sprintf("%s.json", date))
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}
