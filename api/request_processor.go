package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	mb "github.com/saeidalz13/sea-battle/models/battleship"
	mc "github.com/saeidalz13/sea-battle/models/connection"
)

const (
	URLQueryGameUuidKeyword string = "gameUuid"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a snapshot of two 6x6 boards is well under a kilobyte
		ReadBufferSize:  1024,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// RequestProcessor serves the read-only spectator stream. It is also
// a battleship.Notifier: every event of a game is broadcast to the
// sessions watching it. Spectators can never influence the game.
type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager

	// Last snapshot per game, written from the game loop and read by
	// the http handler when a spectator joins mid game.
	snapshots map[string]mc.RespSnapshot

	// Held by every broadcast and by a joining spectator until it is
	// greeted and registered, so a spectator sees its session id, then
	// the latest snapshot, then every later event in order.
	mu sync.Mutex
}

var _ mb.Notifier = (*RequestProcessor)(nil)

func NewRequestProcessor(sessionManager mc.SessionManager, gameManager mb.GameManager) *RequestProcessor {
	return &RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		snapshots:      make(map[string]mc.RespSnapshot),
	}
}

func (rp *RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("could not upgrade connection", "err", err)
		return
	}

	gameUuid := r.URL.Query().Get(URLQueryGameUuidKeyword)
	if _, err := rp.gameManager.GetGame(gameUuid); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidGameUuid)
		msg.AddError(err.Error(), "no running game with this uuid")
		_ = conn.WriteJSON(msg)
		_ = conn.Close()
		return
	}

	session := rp.sessionManager.GenerateNewSession(conn, gameUuid)
	log.Info("a new spectator connected", "session", session.Id(), "game", gameUuid, "remote", conn.RemoteAddr().String())

	go rp.processSession(session)
}

// Greets the spectator before registering it for broadcasts.
func (rp *RequestProcessor) greet(session *mc.Session) error {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := rp.sessionManager.WriteToSessionConn(session, resp); err != nil {
		return err
	}

	if snapshot, prs := rp.snapshots[session.GameUuid()]; prs {
		msg := mc.NewMessage[mc.RespSnapshot](mc.CodeSnapshot)
		msg.AddPayload(snapshot)
		if err := rp.sessionManager.WriteToSessionConn(session, msg); err != nil {
			return err
		}
	}

	rp.sessionManager.RegisterSession(session)
	return nil
}

// Only reads after the greeting, which is how a closed connection
// gets noticed. Anything a spectator sends is answered with
// CodeInvalidSignal.
func (rp *RequestProcessor) processSession(session *mc.Session) {
	if err := rp.greet(session); err != nil {
		log.Warn("could not greet spectator", "session", session.Id(), "err", err)
		_ = session.Conn().Close()
		return
	}
	defer rp.sessionManager.TerminateSession(session.Id())

sessionLoop:
	for {
		_, _, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
		respInvalidSignal.AddError("", "spectators cannot send messages")
		if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal); err != nil {
			break sessionLoop
		}
	}
}

// Callers hold rp.mu
func (rp *RequestProcessor) storeSnapshot(g *mb.Game) mc.RespSnapshot {
	snapshot := mc.NewRespSnapshot(g)
	rp.snapshots[g.Uuid()] = snapshot
	return snapshot
}

func (rp *RequestProcessor) NotifyTurn(g *mb.Game) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	msg := mc.NewMessage[mc.RespSnapshot](mc.CodeSnapshot)
	msg.AddPayload(rp.storeSnapshot(g))
	rp.sessionManager.Broadcast(g.Uuid(), msg)
}

func (rp *RequestProcessor) NotifyShot(g *mb.Game, shooter *mb.Player, target mb.Coordinates, outcome mb.ShotOutcome) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	rp.storeSnapshot(g)

	msg := mc.NewMessage[mc.RespShot](mc.CodeShot)
	msg.AddPayload(mc.RespShot{
		Shooter:   shooter.Kind().String(),
		X:         target.X,
		Y:         target.Y,
		Outcome:   outcome.String(),
		Remaining: shooter.EnemyBoard().Remaining(),
	})
	rp.sessionManager.Broadcast(g.Uuid(), msg)
}

func (rp *RequestProcessor) NotifyRejectedShot(g *mb.Game, shooter *mb.Player, target mb.Coordinates, err error) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	msg := mc.NewMessage[mc.RespShot](mc.CodeRejectedShot)
	msg.AddPayload(mc.RespShot{
		Shooter:   shooter.Kind().String(),
		X:         target.X,
		Y:         target.Y,
		Remaining: shooter.EnemyBoard().Remaining(),
	})
	msg.AddError(err.Error(), "shot rejected")
	rp.sessionManager.Broadcast(g.Uuid(), msg)
}

// Sends the final boards and the result, then lets go of the
// spectators of that game.
func (rp *RequestProcessor) NotifyEnd(g *mb.Game) {
	rp.finish(g, nil)
}

// Same as the end of a match, without a winner and with the reason.
func (rp *RequestProcessor) NotifyAbort(g *mb.Game, err error) {
	rp.finish(g, err)
}

func (rp *RequestProcessor) finish(g *mb.Game, abortErr error) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	snapshot := mc.NewMessage[mc.RespSnapshot](mc.CodeSnapshot)
	snapshot.AddPayload(mc.NewRespSnapshot(g))
	rp.sessionManager.Broadcast(g.Uuid(), snapshot)

	var winner string
	if w := g.Winner(); w != nil {
		winner = w.Kind().String()
	}
	msg := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	msg.AddPayload(mc.RespEndGame{MatchState: g.State().String(), Winner: winner})
	if abortErr != nil {
		msg.AddError(abortErr.Error(), "match aborted")
	}
	rp.sessionManager.Broadcast(g.Uuid(), msg)

	delete(rp.snapshots, g.Uuid())
	rp.sessionManager.TerminateGameSessions(g.Uuid())
}
