// Package snapshots archives each successful roster refresh to disk, one
// file per UTC day, so a restart can serve the last known data before the
// first refresh completes.
package snapshots

import (
	"errors"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

// ErrNoSnapshot is returned by Latest when nothing has been archived yet.
var ErrNoSnapshot = errors.New("no snapshot available")

// Snapshot is one day's archived data.
type Snapshot struct {
	Date    string           `json:"date"`
	Players []players.Player `json:"players"`
	Notes   []notes.Note     `json:"notes"`
	Videos  []videos.Video   `json:"videos"`
}
