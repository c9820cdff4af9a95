package fixture

import (
	"context"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

// Name identifies this provider in logs and metrics.
const Name = "fixture"

// Provider returns the built-in demo organization: a roster spread across
// the NHL club, its AHL affiliate and a few prospects abroad, plus notes and
// video metadata. Values are mocked.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic roster with points derived.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return players.NormalizeAll(roster()), nil
}

// FetchNotes returns deterministic meeting notes.
func (p *Provider) FetchNotes(ctx context.Context) ([]notes.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return meetingNotes(), nil
}

// FetchVideos returns deterministic video metadata.
func (p *Provider) FetchVideos(ctx context.Context) ([]videos.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return library(), nil
}
