package providers

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadErrorString(t *testing.T) {
	err := &LoadError{Provider: "file", Source: "roster.json", Err: fs.ErrNotExist}
	if got := err.Error(); !strings.Contains(got, "roster.json") || !strings.Contains(got, "file") {
		t.Fatalf("expected provider and source in error string, got %q", got)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected LoadError to unwrap to its cause")
	}

	wrapped := fmt.Errorf("refresh: %w", err)
	le, ok := AsLoadError(wrapped)
	if !ok || le.Source != "roster.json" {
		t.Fatalf("expected to unwrap load error, got %+v", le)
	}

	noSource := &LoadError{Provider: "fixture", Err: errors.New("boom")}
	if got := noSource.Error(); got != "fixture: load: boom" {
		t.Fatalf("unexpected message %q", got)
	}

	if _, ok := AsLoadError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
