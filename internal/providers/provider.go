package providers

import (
	"context"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

// PlayerProvider fetches the roster.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// NoteProvider fetches meeting and scouting notes.
type NoteProvider interface {
	FetchNotes(ctx context.Context) ([]notes.Note, error)
}

// VideoProvider fetches video library metadata.
type VideoProvider interface {
	FetchVideos(ctx context.Context) ([]videos.Video, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerProvider
	NoteProvider
	VideoProvider
}
