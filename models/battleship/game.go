package battleship

import (
	"github.com/google/uuid"
)

type MatchState uint8

const (
	MatchStateTurnHuman MatchState = iota
	MatchStateTurnBot
	MatchStateHumanWon
	MatchStateBotWon
)

func (s MatchState) String() string {
	switch s {
	case MatchStateTurnHuman:
		return "turn_human"
	case MatchStateTurnBot:
		return "turn_bot"
	case MatchStateHumanWon:
		return "human_won"
	default:
		return "bot_won"
	}
}

func (s MatchState) IsOver() bool {
	return s == MatchStateHumanWon || s == MatchStateBotWon
}

type Game struct {
	uuid     string
	state    MatchState
	human    *Player
	bot      *Player
	notifier Notifier
	moves    int
}

// NewGame wires both players to the boards. The game owns the boards;
// players only reference them. The human always moves first.
func NewGame(humanBoard, botBoard *Board, humanChooser, botChooser TargetChooser, notifier Notifier) *Game {
	if notifier == nil {
		notifier = Notifiers(nil)
	}

	game := &Game{
		uuid:     uuid.NewString()[:6],
		state:    MatchStateTurnHuman,
		notifier: notifier,
	}

	game.human = NewPlayer(PlayerKindHuman, humanBoard, botBoard, humanChooser)
	game.human.currentGame = game
	game.bot = NewPlayer(PlayerKindBot, botBoard, humanBoard, botChooser)
	game.bot.currentGame = game

	return game
}

// Step plays a single move of the current player and moves the
// state machine. A hit that does not sink keeps the turn.
func (g *Game) Step() error {
	if g.state.IsOver() {
		return nil
	}

	player := g.CurrentPlayer()
	repeat, err := player.Move()
	if err != nil {
		return err
	}
	g.moves++

	if player.enemyBoard.Remaining() == 0 {
		if player.IsHuman() {
			g.state = MatchStateHumanWon
		} else {
			g.state = MatchStateBotWon
		}
		return nil
	}

	if repeat {
		return nil
	}

	if g.state == MatchStateTurnHuman {
		g.state = MatchStateTurnBot
	} else {
		g.state = MatchStateTurnHuman
	}
	return nil
}

// Play runs the game to the end. It only returns early when a
// chooser fails, e.g. the human input is closed; the notifier then
// hears NotifyAbort instead of NotifyEnd.
func (g *Game) Play() (MatchState, error) {
	for !g.state.IsOver() {
		g.notifier.NotifyTurn(g)
		if err := g.Step(); err != nil {
			g.notifier.NotifyAbort(g, err)
			return g.state, err
		}
	}

	g.notifier.NotifyEnd(g)
	return g.state, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) State() MatchState {
	return g.state
}

func (g *Game) IsOver() bool {
	return g.state.IsOver()
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) Human() *Player {
	return g.human
}

func (g *Game) Bot() *Player {
	return g.bot
}

// Returns the player whose turn it is, or nil once the game is over.
func (g *Game) CurrentPlayer() *Player {
	switch g.state {
	case MatchStateTurnHuman:
		return g.human
	case MatchStateTurnBot:
		return g.bot
	default:
		return nil
	}
}

func (g *Game) Winner() *Player {
	switch g.state {
	case MatchStateHumanWon:
		return g.human
	case MatchStateBotWon:
		return g.bot
	default:
		return nil
	}
}
