package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/sea-battle/internal/error"
)

type GameManager interface {
	CreateGame(humanChooser, botChooser TargetChooser, rng Rand, notifier Notifier) *Game
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 2),
	}
}

// CreateGame generates both boards with the default fleet. The
// computer's board is hidden so its ships are not rendered.
func (bgm *BattleshipGameManager) CreateGame(humanChooser, botChooser TargetChooser, rng Rand, notifier Notifier) *Game {
	humanBoard := NewRandomBoard(DefaultBoardSize, DefaultFleet, rng)
	botBoard := NewRandomBoard(DefaultBoardSize, DefaultFleet, rng)
	botBoard.SetHidden(true)

	game := NewGame(humanBoard, botBoard, humanChooser, botChooser, notifier)

	bgm.mu.Lock()
	bgm.games[game.Uuid()] = game
	bgm.mu.Unlock()

	return game
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}
