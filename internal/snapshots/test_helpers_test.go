package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
)

func simpleSnapshot(date string) Snapshot {
	return Snapshot{
		Date:    date,
		Players: []players.Player{testutil.SamplePlayer("p-" + date)},
	}
}

func writeSnapshot(t *testing.T, w *Writer, snap Snapshot) {
	t.Helper()
	if err := w.Write(snap); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", snap.Date, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(SnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func fixedWriter(dir string, retention int, now time.Time) *Writer {
	w := NewWriter(dir, retention)
	w.now = testutil.NowAt(now)
	return w
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
