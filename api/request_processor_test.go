package api_test

import (
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/saeidalz13/sea-battle/api"
	mb "github.com/saeidalz13/sea-battle/models/battleship"
	mc "github.com/saeidalz13/sea-battle/models/connection"
)

var dialer = websocket.Dialer{
	HandshakeTimeout: 5 * time.Second,
}

type idleChooser struct{}

func (idleChooser) ChooseTarget() (mb.Coordinates, error) {
	return mb.Coordinates{}, io.EOF
}

func newTestServer(t *testing.T) (*httptest.Server, *api.RequestProcessor, *mb.BattleshipGameManager, *mc.SpectatorSessionManager) {
	t.Helper()

	ssm := mc.NewSpectatorSessionManager(time.Hour)
	bgm := mb.NewBattleshipGameManager()
	rp := api.NewRequestProcessor(ssm, bgm)

	mux := http.NewServeMux()
	mux.Handle("GET /spectate", rp)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, rp, bgm, ssm
}

func dial(t *testing.T, server *httptest.Server, gameUuid string) *websocket.Conn {
	t.Helper()

	wsUrl := "ws" + strings.TrimPrefix(server.URL, "http") + "/spectate?" + api.URLQueryGameUuidKeyword + "=" + gameUuid
	conn, _, err := dialer.Dial(wsUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestSpectateInvalidGameUuid(t *testing.T) {
	server, _, _, _ := newTestServer(t)
	conn := dial(t, server, "nope")

	var resp mc.Message[mc.NoPayload]
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}

	if resp.Code != mc.CodeInvalidGameUuid {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeInvalidGameUuid, resp.Code)
	}
	if resp.Error == nil {
		t.Fatal("expected error details in the response")
	}
}

func TestSpectateGame(t *testing.T) {
	server, rp, bgm, ssm := newTestServer(t)

	game := bgm.CreateGame(idleChooser{}, idleChooser{}, rand.New(rand.NewSource(1)), rp)
	rp.NotifyTurn(game)

	conn := dial(t, server, game.Uuid())

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}
	if respSessionId.Code != mc.CodeSessionID || respSessionId.Payload.SessionID == "" {
		t.Fatalf("expected a session id, got: %+v", respSessionId)
	}

	var respSnapshot mc.Message[mc.RespSnapshot]
	if err := conn.ReadJSON(&respSnapshot); err != nil {
		t.Fatal(err)
	}
	if respSnapshot.Code != mc.CodeSnapshot {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeSnapshot, respSnapshot.Code)
	}

	snapshot := respSnapshot.Payload
	if snapshot.GameUuid != game.Uuid() || snapshot.MatchState != mb.MatchStateTurnHuman.String() {
		t.Fatalf("unexpected snapshot header: %+v", snapshot)
	}
	if !snapshot.BotBoard.Hidden || snapshot.BotBoard.Remaining != len(mb.DefaultFleet) {
		t.Fatalf("unexpected bot board: %+v", snapshot.BotBoard)
	}
	for _, row := range snapshot.BotBoard.Cells {
		for _, state := range row {
			if state == int(mb.PositionStateShip) {
				t.Fatal("spectators must not see the computer's ships")
			}
		}
	}

	shipCells := 0
	for _, row := range snapshot.HumanBoard.Cells {
		for _, state := range row {
			if state == int(mb.PositionStateShip) {
				shipCells++
			}
		}
	}
	expectedShipCells := 0
	for _, length := range mb.DefaultFleet {
		expectedShipCells += length
	}
	if shipCells != expectedShipCells {
		t.Fatalf("expected ship cells on the human board: %d\tgot: %d", expectedShipCells, shipCells)
	}

	target := game.Bot().Board().Ships()[0].Bow()
	outcome, err := game.Bot().Board().Fire(target)
	if err != nil {
		t.Fatal(err)
	}
	rp.NotifyShot(game, game.Human(), target, outcome)

	var respShot mc.Message[mc.RespShot]
	if err := conn.ReadJSON(&respShot); err != nil {
		t.Fatal(err)
	}
	expectedShot := mc.RespShot{
		Shooter:   mb.PlayerKindHuman.String(),
		X:         target.X,
		Y:         target.Y,
		Outcome:   outcome.String(),
		Remaining: game.Bot().Board().Remaining(),
	}
	if respShot.Code != mc.CodeShot || respShot.Payload != expectedShot {
		t.Fatalf("expected shot:\n%+v\n\ngot:\n%+v", expectedShot, respShot)
	}

	rp.NotifyEnd(game)

	if err := conn.ReadJSON(&respSnapshot); err != nil {
		t.Fatal(err)
	}
	var respEndGame mc.Message[mc.RespEndGame]
	if err := conn.ReadJSON(&respEndGame); err != nil {
		t.Fatal(err)
	}
	if respEndGame.Code != mc.CodeEndGame {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeEndGame, respEndGame.Code)
	}

	if ssm.Count() != 0 {
		t.Fatalf("expected no sessions after the end\tgot: %d", ssm.Count())
	}
}

func TestSpectatorMessagesRejected(t *testing.T) {
	server, rp, bgm, _ := newTestServer(t)
	game := bgm.CreateGame(idleChooser{}, idleChooser{}, rand.New(rand.NewSource(2)), rp)

	conn := dial(t, server, game.Uuid())

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}

	if err := conn.WriteJSON(mc.NewSignal(mc.CodeShot)); err != nil {
		t.Fatal(err)
	}

	var resp mc.Message[mc.NoPayload]
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != mc.CodeInvalidSignal {
		t.Fatalf("expected code: %d\t got: %d", mc.CodeInvalidSignal, resp.Code)
	}
}

func TestSpectatorGreetedBeforeBroadcasts(t *testing.T) {
	server, rp, bgm, _ := newTestServer(t)
	game := bgm.CreateGame(idleChooser{}, idleChooser{}, rand.New(rand.NewSource(3)), rp)

	// the game keeps announcing turns while spectators join
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				rp.NotifyTurn(game)
				time.Sleep(time.Millisecond)
			}
		}
	}()
	defer func() {
		close(stop)
		<-done
	}()

	for i := 0; i < 5; i++ {
		conn := dial(t, server, game.Uuid())

		var first mc.Message[mc.NoPayload]
		if err := conn.ReadJSON(&first); err != nil {
			t.Fatal(err)
		}
		if first.Code != mc.CodeSessionID {
			t.Fatalf("spectator %d: expected first code: %d\tgot: %d", i, mc.CodeSessionID, first.Code)
		}

		var second mc.Message[mc.RespSnapshot]
		if err := conn.ReadJSON(&second); err != nil {
			t.Fatal(err)
		}
		if second.Code != mc.CodeSnapshot || second.Payload.GameUuid != game.Uuid() {
			t.Fatalf("spectator %d: expected a snapshot after the session id\tgot: %+v", i, second)
		}

		// leave, so the broadcasts do not pile up unread
		conn.Close()
	}
}

func TestSpectateAbortedGame(t *testing.T) {
	server, rp, bgm, ssm := newTestServer(t)
	game := bgm.CreateGame(idleChooser{}, idleChooser{}, rand.New(rand.NewSource(4)), rp)

	conn := dial(t, server, game.Uuid())

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}

	// the human chooser fails right away
	if _, err := game.Play(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected error: %v\tgot: %v", io.EOF, err)
	}

	var resp mc.Message[mc.RespEndGame]
	for {
		var msg mc.Message[mc.RespEndGame]
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatal(err)
		}
		if msg.Code == mc.CodeEndGame {
			resp = msg
			break
		}
	}

	if resp.Payload.Winner != "" || resp.Payload.MatchState != mb.MatchStateTurnHuman.String() {
		t.Fatalf("unexpected end of an aborted match: %+v", resp.Payload)
	}
	if resp.Error == nil {
		t.Fatal("expected the abort reason in the response")
	}
	if ssm.Count() != 0 {
		t.Fatalf("expected no sessions after the abort\tgot: %d", ssm.Count())
	}
}

func TestSpectatorLeavingEndsSession(t *testing.T) {
	server, rp, bgm, ssm := newTestServer(t)
	game := bgm.CreateGame(idleChooser{}, idleChooser{}, rand.New(rand.NewSource(5)), rp)

	conn := dial(t, server, game.Uuid())

	var respSessionId mc.Message[mc.RespSessionId]
	if err := conn.ReadJSON(&respSessionId); err != nil {
		t.Fatal(err)
	}

	// registration follows the greeting shortly
	deadline := time.Now().Add(2 * time.Second)
	for ssm.Count() != 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ssm.Count() != 1 {
		t.Fatalf("expected sessions: 1\tgot: %d", ssm.Count())
	}

	conn.Close()

	// the first read error ends the session, no retries
	deadline = time.Now().Add(2 * time.Second)
	for ssm.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ssm.Count() != 0 {
		t.Fatalf("expected no sessions after the spectator left\tgot: %d", ssm.Count())
	}
}
