package testutil

import (
	"context"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
)

// GoodProvider returns the provided data with no error.
type GoodProvider struct {
	Players []players.Player
	Notes   []notes.Note
	Videos  []videos.Video
}

func (p GoodProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return p.Players, nil
}

func (p GoodProvider) FetchNotes(ctx context.Context) ([]notes.Note, error) {
	_ = ctx
	return p.Notes, nil
}

func (p GoodProvider) FetchVideos(ctx context.Context) ([]videos.Video, error) {
	_ = ctx
	return p.Videos, nil
}

// ErrProvider fails every fetch with Err.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchNotes(ctx context.Context) ([]notes.Note, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchVideos(ctx context.Context) ([]videos.Video, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
func UnavailableProvider() ErrProvider {
	return ErrProvider{Err: providers.ErrProviderUnavailable}
}
