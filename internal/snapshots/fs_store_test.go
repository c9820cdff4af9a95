package snapshots

import (
	"errors"
	"os"
	"testing"
)

func TestFSStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, fixedWriter(dir, 10, day), simpleSnapshot("2024-03-10"))

	snap, err := NewFSStore(dir).Load("2024-03-10")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Players) != 1 || snap.Date != "2024-03-10" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestFSStoreLoadErrors(t *testing.T) {
	var nilStore *FSStore
	if _, err := nilStore.Load("2024-03-10"); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := NewFSStore(t.TempDir()).Load(""); err == nil {
		t.Fatalf("expected error for missing date")
	}
	if _, err := NewFSStore(t.TempDir()).Load("2024-03-10"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFSStoreLatest(t *testing.T) {
	dir := t.TempDir()
	w := fixedWriter(dir, 30, day)
	writeSnapshot(t, w, simpleSnapshot("2024-03-08"))
	writeSnapshot(t, w, simpleSnapshot("2024-03-09"))

	snap, err := NewFSStore(dir).Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Date != "2024-03-09" {
		t.Fatalf("expected newest snapshot, got %s", snap.Date)
	}
}

func TestFSStoreLatestSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	w := fixedWriter(dir, 30, day)
	writeSnapshot(t, w, simpleSnapshot("2024-03-08"))
	writeSnapshot(t, w, simpleSnapshot("2024-03-09"))
	if err := os.Remove(SnapshotPath(dir, "2024-03-09")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	snap, err := NewFSStore(dir).Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Date != "2024-03-08" {
		t.Fatalf("expected fallback to older snapshot, got %s", snap.Date)
	}
}

func TestFSStoreLatestEmpty(t *testing.T) {
	if _, err := NewFSStore(t.TempDir()).Latest(); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}
