package battleship

const (
	DefaultBoardSize = 6

	// Attempts shared by all ships of one board. Once exceeded the
	// board is thrown away, since greedy placement can leave no room
	// for the last ships.
	MaxPlacementAttempts = 2000
)

// Ship lengths placed on every board, biggest first: 7 ships, 11 cells.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// Satisfied by *rand.Rand
type Rand interface {
	Intn(n int) int
}

// PlaceFleet makes one attempt at filling a fresh board with the
// fleet. It returns nil when the attempts run out, which is a signal
// to start over rather than an error.
func PlaceFleet(size int, fleet []int, rng Rand) *Board {
	board := NewBoard(size)
	attempts := 0

	for _, length := range fleet {
		for {
			attempts++
			if attempts > MaxPlacementAttempts {
				return nil
			}

			// bow may land one past the edge; PlaceShip rejects it
			bow := NewCoordinates(rng.Intn(size+1), rng.Intn(size+1))
			ship := NewShip(bow, length, Orientation(rng.Intn(2)))

			if err := board.PlaceShip(ship); err == nil {
				break
			}
		}
	}

	return board
}

// NewRandomBoard retries PlaceFleet until a board comes out. For the
// default fleet on a 6x6 grid it converges within a few attempts.
func NewRandomBoard(size int, fleet []int, rng Rand) *Board {
	var board *Board
	for board == nil {
		board = PlaceFleet(size, fleet, rng)
	}
	return board
}
