// Package file serves roster, notes and video data from a JSON document on
// disk. The file is re-read on every fetch so edits show up on the next
// refresh.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
)

// Name identifies this provider in logs and metrics.
const Name = "file"

// Document is the on-disk layout.
type Document struct {
	Players []players.Player `json:"players"`
	Notes   []notes.Note     `json:"notes"`
	Videos  []videos.Video   `json:"videos"`
}

// Provider reads a Document from Path.
type Provider struct {
	Path string
}

// New creates a file provider for path.
func New(path string) *Provider {
	return &Provider{Path: path}
}

// FetchPlayers returns the validated, normalized roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	doc, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, pl := range doc.Players {
		if err := validate(pl); err != nil {
			return nil, p.loadErr(err)
		}
	}
	return players.NormalizeAll(doc.Players), nil
}

// FetchNotes returns the notes section.
func (p *Provider) FetchNotes(ctx context.Context) ([]notes.Note, error) {
	doc, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Notes, nil
}

// FetchVideos returns the videos section.
func (p *Provider) FetchVideos(ctx context.Context) ([]videos.Video, error) {
	doc, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Videos, nil
}

func (p *Provider) load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return Document{}, p.loadErr(err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, p.loadErr(fmt.Errorf("decode: %w", err))
	}
	return doc, nil
}

func (p *Provider) loadErr(err error) error {
	return &providers.LoadError{Provider: Name, Source: p.Path, Err: err}
}

func validate(p players.Player) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("player %q has no id", p.Name)
	case !p.Position.Valid():
		return fmt.Errorf("player %s: unknown position %q", p.ID, p.Position)
	case !p.Status.Valid():
		return fmt.Errorf("player %s: unknown status %q", p.ID, p.Status)
	case !p.Rating.Valid():
		return fmt.Errorf("player %s: unknown rating %q", p.ID, p.Rating)
	case !p.Contract.Valid():
		return fmt.Errorf("player %s: unknown contract status %q", p.ID, p.Contract)
	case !p.Shoots.Valid():
		return fmt.Errorf("player %s: unknown handedness %q", p.ID, p.Shoots)
	case !p.PlayerStyle.Valid():
		return fmt.Errorf("player %s: unknown style %q", p.ID, p.PlayerStyle)
	}
	return nil
}
