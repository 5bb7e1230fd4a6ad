package battleship

import "fmt"

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

const MaxShipLength = 3

type Ship struct {
	bow         Coordinates
	length      int
	orientation Orientation
	lives       int
}

// NewShip panics on a length outside [1, MaxShipLength] or an
// unknown orientation. Those can only come from a bug, never from
// a player.
func NewShip(bow Coordinates, length int, orientation Orientation) *Ship {
	if length < 1 || length > MaxShipLength {
		panic(fmt.Sprintf("ship length must be in [1, %d], got: %d", MaxShipLength, length))
	}
	if orientation != OrientationHorizontal && orientation != OrientationVertical {
		panic(fmt.Sprintf("unknown ship orientation: %d", orientation))
	}

	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		lives:       length,
	}
}

// Coordinates returns the cells of the ship starting at the bow,
// advancing along X when horizontal and along Y when vertical.
func (sh *Ship) Coordinates() []Coordinates {
	coords := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		if sh.orientation == OrientationHorizontal {
			coords = append(coords, sh.bow.Offset(i, 0))
		} else {
			coords = append(coords, sh.bow.Offset(0, i))
		}
	}
	return coords
}

func (sh *Ship) occupies(c Coordinates) bool {
	for _, sc := range sh.Coordinates() {
		if sc == c {
			return true
		}
	}
	return false
}

// GotHit takes one life from the ship and reports
// whether it is sunk now.
func (sh *Ship) GotHit() bool {
	if sh.lives > 0 {
		sh.lives--
	}
	return sh.IsSunk()
}

func (sh *Ship) IsSunk() bool {
	return sh.lives == 0
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Lives() int {
	return sh.lives
}
