package battleship

import (
	cerr "github.com/saeidalz13/sea-battle/internal/error"
)

type PlayerKind uint8

const (
	PlayerKindHuman PlayerKind = iota
	PlayerKindBot
)

func (k PlayerKind) String() string {
	if k == PlayerKindBot {
		return "computer"
	}
	return "user"
}

type TargetChooser interface {
	ChooseTarget() (Coordinates, error)
}

// CoordinatesReader supplies well formed, zero-indexed coordinates
// typed in by a person. Format checks and re-prompting are its job.
type CoordinatesReader interface {
	ReadCoordinates() (Coordinates, error)
}

type HumanChooser struct {
	input CoordinatesReader
}

var _ TargetChooser = (*HumanChooser)(nil)

func NewHumanChooser(input CoordinatesReader) *HumanChooser {
	return &HumanChooser{input: input}
}

func (hc *HumanChooser) ChooseTarget() (Coordinates, error) {
	return hc.input.ReadCoordinates()
}

// BotChooser picks uniformly over the whole grid and keeps no memory
// of earlier shots. Repeats are rejected by the board and retried.
type BotChooser struct {
	gridSize int
	rng      Rand
}

var _ TargetChooser = (*BotChooser)(nil)

func NewBotChooser(gridSize int, rng Rand) *BotChooser {
	return &BotChooser{gridSize: gridSize, rng: rng}
}

func (bc *BotChooser) ChooseTarget() (Coordinates, error) {
	return NewCoordinates(bc.rng.Intn(bc.gridSize), bc.rng.Intn(bc.gridSize)), nil
}

type Player struct {
	kind        PlayerKind
	board       *Board
	enemyBoard  *Board
	chooser     TargetChooser
	currentGame *Game
}

func NewPlayer(kind PlayerKind, board, enemyBoard *Board, chooser TargetChooser) *Player {
	return &Player{
		kind:       kind,
		board:      board,
		enemyBoard: enemyBoard,
		chooser:    chooser,
	}
}

// Move fires at the enemy board until a shot is accepted. Rule
// violations are reported and the chooser is asked again; any other
// error ends the move. It returns true when a ship was hit but not
// sunk, meaning the player keeps the turn.
func (p *Player) Move() (bool, error) {
	notifier := p.notifier()

	for {
		target, err := p.chooser.ChooseTarget()
		if err != nil {
			return false, err
		}

		outcome, err := p.enemyBoard.Fire(target)
		if err != nil {
			if !cerr.IsRecoverable(err) {
				return false, err
			}
			notifier.NotifyRejectedShot(p.currentGame, p, target, err)
			continue
		}

		notifier.NotifyShot(p.currentGame, p, target, outcome)
		return outcome == ShotHit, nil
	}
}

func (p *Player) notifier() Notifier {
	if p.currentGame == nil || p.currentGame.notifier == nil {
		return Notifiers(nil)
	}
	return p.currentGame.notifier
}

func (p *Player) Kind() PlayerKind {
	return p.kind
}

func (p *Player) IsHuman() bool {
	return p.kind == PlayerKindHuman
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) EnemyBoard() *Board {
	return p.enemyBoard
}

func (p *Player) HasLost() bool {
	return p.board.Remaining() == 0
}
