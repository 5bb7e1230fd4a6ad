package analytics

import (
	"context"
	"net"

	"github.com/charmbracelet/log"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/sea-battle/db/sqlc"
	mb "github.com/saeidalz13/sea-battle/models/battleship"
)

// Recorder counts started matches and winners per host. A failing
// database is logged and otherwise ignored; the match goes on.
type Recorder struct {
	analytics *sqlc.AnalyticsManager
	hostInet  pqtype.Inet
	started   map[string]bool
}

var _ mb.Notifier = (*Recorder)(nil)

func NewRecorder(analytics *sqlc.AnalyticsManager, hostIpNet net.IPNet) *Recorder {
	return &Recorder{
		analytics: analytics,
		hostInet:  pqtype.Inet{IPNet: hostIpNet, Valid: true},
		started:   make(map[string]bool),
	}
}

// The first turn of a game counts as its start
func (r *Recorder) NotifyTurn(g *mb.Game) {
	if r.started[g.Uuid()] {
		return
	}
	r.started[g.Uuid()] = true

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := r.analytics.IncrementMatchesStartedCount(ctx, r.hostInet); err != nil {
		log.Error("failed to record match start", "game", g.Uuid(), "err", err)
	}
}

func (r *Recorder) NotifyShot(*mb.Game, *mb.Player, mb.Coordinates, mb.ShotOutcome) {}

func (r *Recorder) NotifyRejectedShot(*mb.Game, *mb.Player, mb.Coordinates, error) {}

func (r *Recorder) NotifyEnd(g *mb.Game) {
	delete(r.started, g.Uuid())

	winner := g.Winner()
	if winner == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := r.analytics.IncrementWinsCount(ctx, r.hostInet, winner.IsHuman()); err != nil {
		log.Error("failed to record match result", "game", g.Uuid(), "err", err)
	}
}

// An aborted match has no winner to count.
func (r *Recorder) NotifyAbort(g *mb.Game, err error) {
	delete(r.started, g.Uuid())
}
