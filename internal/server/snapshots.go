package server

import (
	"errors"
	"log/slog"

	"github.com/blakethaselberger/StarsOps-sub001/internal/config"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/poller"
	"github.com/blakethaselberger/StarsOps-sub001/internal/snapshots"
)

// wireSnapshots seeds sink from the newest archived snapshot and registers
// the archive on the poller. A missing or unreadable archive only logs.
func wireSnapshots(cfg config.SnapshotConfig, sink poller.Sink, plr *poller.Poller, logger *slog.Logger) {
	if cfg.Dir == "" {
		return
	}
	plr.SetArchiver(snapshots.NewWriter(cfg.Dir, cfg.RetentionDays))

	snap, err := snapshots.NewFSStore(cfg.Dir).Latest()
	switch {
	case errors.Is(err, snapshots.ErrNoSnapshot):
		return
	case err != nil:
		logging.Warn(logger, "snapshot seed failed", "error", err, logging.FieldFile, cfg.Dir)
		return
	}
	sink.SetPlayers(players.NormalizeAll(snap.Players))
	sink.SetNotes(snap.Notes)
	sink.SetVideos(snap.Videos)
	logging.Info(logger, "seeded roster from snapshot", "date", snap.Date, logging.FieldCount, len(snap.Players))
}
