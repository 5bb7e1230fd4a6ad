package connection

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
	writeWait               = time.Second * 5
)

type ConnectionHandler interface {
	writeToConnWithRetry(msg interface{}) error
	onConnErr(err error) uint8
}

// Session is one spectator watching one game. Broadcasts come from
// the game loop and replies to stray messages from the read loop;
// the mutex keeps their frames from interleaving.
type Session struct {
	id        string
	gameUuid  string
	conn      *websocket.Conn
	createdAt time.Time
	writeMu   sync.Mutex
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id, gameUuid string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		gameUuid:  gameUuid,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) GameUuid() string {
	return s.gameUuid
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Warn("timeout error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn("high server load/traffic error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Info("spectator left", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	/*
		Spectators never send anything meaningful. Whatever else
		comes back is treated as a broken connection:
		protocol errors, invalid payloads, policy violations.
	*/
	log.Error("unexpected error", "session", s.id, "err", err)
	return ConnLoopBreak
}

// Writes msg as JSON to the connection of that session with a
// linear backoff on timeouts.
func (s *Session) writeToConnWithRetry(msg interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8

writeLoop:
	for {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))

		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				log.Warnf("writing to ws [%s] failed; retrying... (retry no. %d)", s.id, retries)
				time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
				continue writeLoop
			}
			return NewConnErr(ConnLoopRetry).AddDesc("max retries reached: " + err.Error())

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking writeLoop due to: " + err.Error())
		}
	}
}
