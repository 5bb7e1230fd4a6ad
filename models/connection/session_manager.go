package connection

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn, gameUuid string) *Session
	RegisterSession(session *Session)
	CleanupPeriodically(ctx context.Context)

	TerminateSession(sessionId string)
	TerminateGameSessions(gameUuid string)
	Broadcast(gameUuid string, msg interface{})
	WriteToSessionConn(session *Session, msg interface{}) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
}

type SpectatorSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*SpectatorSessionManager)(nil)

func NewSpectatorSessionManager(cleanupInterval time.Duration) *SpectatorSessionManager {
	initMapSize := 10

	return &SpectatorSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: cleanupInterval,
	}
}

// GenerateNewSession only creates the session. It receives no
// broadcasts until RegisterSession is called, which leaves room to
// greet the spectator first.
func (ssm *SpectatorSessionManager) GenerateNewSession(conn *websocket.Conn, gameUuid string) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	return NewSession(sessionId, gameUuid, conn)
}

func (ssm *SpectatorSessionManager) RegisterSession(session *Session) {
	ssm.mu.Lock()
	ssm.sessions[session.id] = session
	ssm.mu.Unlock()
}

func (ssm *SpectatorSessionManager) TerminateSession(sessionId string) {
	ssm.mu.Lock()
	session, prs := ssm.sessions[sessionId]
	delete(ssm.sessions, sessionId)
	ssm.mu.Unlock()

	if prs && session != nil {
		_ = session.conn.Close()
		log.Info("session terminated", "session", sessionId)
	}
}

func (ssm *SpectatorSessionManager) sessionsOfGame(gameUuid string) []*Session {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()

	sessions := make([]*Session, 0, len(ssm.sessions))
	for _, session := range ssm.sessions {
		if session.gameUuid == gameUuid {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

func (ssm *SpectatorSessionManager) TerminateGameSessions(gameUuid string) {
	for _, session := range ssm.sessionsOfGame(gameUuid) {
		ssm.TerminateSession(session.id)
	}
}

// Broadcast sends msg to every spectator of the game. Sessions that
// cannot be written to are terminated; the game does not care.
func (ssm *SpectatorSessionManager) Broadcast(gameUuid string, msg interface{}) {
	for _, session := range ssm.sessionsOfGame(gameUuid) {
		if err := ssm.WriteToSessionConn(session, msg); err != nil {
			var connErr ConnErr
			if errors.As(err, &connErr) && connErr.Code() == ConnLoopRetry {
				log.Warn("dropping slow spectator", "session", session.id, "err", err)
			} else {
				log.Warn("dropping spectator", "session", session.id, "err", err)
			}
			ssm.TerminateSession(session.id)
		}
	}
}

func (ssm *SpectatorSessionManager) WriteToSessionConn(session *Session, msg interface{}) error {
	return session.writeToConnWithRetry(msg)
}

// Spectators get no read deadline and gorilla read errors are
// permanent, so the first error ends the session.
func (ssm *SpectatorSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	messageType, payload, err := session.conn.ReadMessage()
	if err != nil {
		session.onConnErr(err)
		return -1, []byte{}, err
	}
	return messageType, payload, nil
}

// To ensure that there is no dangling connections, sessions
// living longer than the cleanup interval are marked as stale
// and removed. Stops when ctx is done.
func (ssm *SpectatorSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(ssm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		ssm.mu.RLock()
		toDelete := make([]string, 0, len(ssm.sessions))
		for ID, session := range ssm.sessions {
			if time.Since(session.createdAt) > ssm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}
		ssm.mu.RUnlock()

		for _, ID := range toDelete {
			ssm.TerminateSession(ID)
		}
		if len(toDelete) != 0 {
			log.Info("cleaned up stale sessions", "count", len(toDelete))
		}
	}
}

func (ssm *SpectatorSessionManager) Count() int {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()
	return len(ssm.sessions)
}
