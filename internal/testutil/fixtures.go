package testutil

import (
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

// SamplePlayer returns a minimal rostered NHL forward with the provided id.
func SamplePlayer(id string) players.Player {
	return players.Normalize(players.Player{
		ID:             id,
		Name:           "Sample " + id,
		Number:         10,
		Position:       players.PositionForward,
		Shoots:         players.ShootsLeft,
		Team:           "St. Louis Blues",
		League:         "NHL",
		Age:            25,
		Nationality:    "Canada",
		Status:         players.StatusActive,
		Rating:         players.RatingMiddleSix,
		Contract:       players.ContractSigned,
		ContractExpiry: 2027,
		SalaryValue:    3.5,
		GamesPlayed:    60,
		Goals:          15,
		Assists:        20,
		PlayerStyle:    players.StyleTwoWay,
		DraftYear:      players.IntPtr(2018),
		DraftRound:     players.IntPtr(1),
	})
}

// SampleNote returns a general note with the provided id.
func SampleNote(id string) notes.Note {
	return notes.Note{
		ID:       id,
		Title:    "Note " + id,
		Content:  "Sample content",
		Author:   "Front Office",
		Category: notes.CategoryGeneral,
		Date:     "2024-01-15",
		Tags:     []string{"sample"},
	}
}

// SampleVideo returns a highlights clip with the provided id.
func SampleVideo(id string) videos.Video {
	return videos.Video{
		ID:              id,
		Title:           "Video " + id,
		Player:          "Sample " + id,
		Team:            "St. Louis Blues",
		Category:        videos.CategoryHighlights,
		DurationSeconds: 90,
		Date:            "2024-01-15",
	}
}
