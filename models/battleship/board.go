package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/sea-battle/internal/error"
)

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota

	// Ship hit but still afloat. The shooter fires again.
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// 8-connected neighbourhood, the cell itself included
var haloOffsets = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	size   int
	grid   Grid
	ships  []*Ship
	hidden bool

	// Cells taken by ships and their halos. Only
	// consulted while placing ships.
	reserved map[Coordinates]struct{}

	// Cells fired upon plus revealed halos of sunk ships.
	targeted map[Coordinates]struct{}

	sunk      int
	remaining int
}

func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("board size must be positive, got: %d", size))
	}

	return &Board{
		size:     size,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0, len(DefaultFleet)),
		reserved: make(map[Coordinates]struct{}, size*size),
		targeted: make(map[Coordinates]struct{}, size*size),
	}
}

func (b *Board) IsOutOfBounds(c Coordinates) bool {
	return c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size
}

// PlaceShip validates every cell of the ship before committing any
// of them, so a rejected ship leaves the board untouched.
func (b *Board) PlaceShip(ship *Ship) error {
	if len(b.targeted) != 0 {
		return cerr.ErrBoardAlreadyInPlay()
	}

	coords := ship.Coordinates()
	for _, c := range coords {
		if b.IsOutOfBounds(c) {
			return cerr.ErrShipPlacementInvalid(c.X, c.Y)
		}
		if _, prs := b.reserved[c]; prs {
			return cerr.ErrShipPlacementInvalid(c.X, c.Y)
		}
	}

	for _, c := range coords {
		b.grid[c.X][c.Y] = PositionStateShip
		b.reserved[c] = struct{}{}
	}

	b.ships = append(b.ships, ship)
	b.remaining++
	b.markHalo(ship, false)
	return nil
}

// markHalo reserves the margin around the ship so no other ship can
// be placed next to it. With reveal the margin is instead marked as
// near misses and cannot be fired upon anymore.
func (b *Board) markHalo(ship *Ship, reveal bool) {
	for _, c := range ship.Coordinates() {
		for _, off := range haloOffsets {
			cur := c.Offset(off[0], off[1])
			if b.IsOutOfBounds(cur) {
				continue
			}

			if !reveal {
				b.reserved[cur] = struct{}{}
				continue
			}

			if _, prs := b.targeted[cur]; prs {
				continue
			}
			b.grid[cur.X][cur.Y] = PositionStateNearMiss
			b.targeted[cur] = struct{}{}
		}
	}
}

func (b *Board) Fire(target Coordinates) (ShotOutcome, error) {
	if b.IsOutOfBounds(target) {
		return ShotMiss, cerr.ErrXorYOutOfGridBound(target.X, target.Y)
	}
	if _, prs := b.targeted[target]; prs {
		return ShotMiss, cerr.ErrPositionAlreadyTargeted(target.X, target.Y)
	}

	b.targeted[target] = struct{}{}

	// ships never overlap, so the first match is the only one
	for _, ship := range b.ships {
		if !ship.occupies(target) {
			continue
		}

		b.grid[target.X][target.Y] = PositionStateHit
		if !ship.GotHit() {
			return ShotHit, nil
		}

		b.sunk++
		b.remaining--
		b.markHalo(ship, true)
		return ShotSunk, nil
	}

	b.grid[target.X][target.Y] = PositionStateMiss
	return ShotMiss, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Remaining() int {
	return b.remaining
}

func (b *Board) Sunk() int {
	return b.sunk
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

// Cell returns the raw state of the cell, ignoring the hidden flag.
func (b *Board) Cell(c Coordinates) uint8 {
	return b.grid[c.X][c.Y]
}

// BoardView is what the outside world is allowed to see of a board.
type BoardView struct {
	Size      int     `json:"size"`
	Cells     [][]int `json:"cells"`
	Hidden    bool    `json:"hidden"`
	Remaining int     `json:"remaining"`
	Sunk      int     `json:"sunk"`
}

// View copies the grid, turning ship cells into empty ones
// when the board is hidden. Cells are plain ints so the view
// encodes as a JSON matrix rather than base64 rows.
func (b *Board) View() BoardView {
	cells := make([][]int, b.size)
	for x, row := range b.grid {
		cells[x] = make([]int, b.size)
		for y, state := range row {
			if b.hidden && state == PositionStateShip {
				state = PositionStateEmpty
			}
			cells[x][y] = int(state)
		}
	}

	return BoardView{
		Size:      b.size,
		Cells:     cells,
		Hidden:    b.hidden,
		Remaining: b.remaining,
		Sunk:      b.sunk,
	}
}

func Glyph(state int) string {
	switch uint8(state) {
	case PositionStateShip:
		return "■"
	case PositionStateHit:
		return "X"
	case PositionStateMiss, PositionStateNearMiss:
		return "•"
	default:
		return "O"
	}
}

func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("  |")
	for i := 1; i <= b.size; i++ {
		fmt.Fprintf(&sb, " %d |", i)
	}

	for x, row := range b.View().Cells {
		fmt.Fprintf(&sb, "\n%d |", x+1)
		for _, state := range row {
			fmt.Fprintf(&sb, " %s |", Glyph(state))
		}
	}
	return sb.String()
}
