package battleship

const (
	PositionStateEmpty uint8 = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss

	// Halo cell around a sunk ship. Nothing can be
	// there, so it is shown the same way as a miss.
	PositionStateNearMiss
)

type Grid [][]uint8

// Creates a new default grid
// All indexes are zero/PositionStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]uint8, gridSize)
	}
	return grid
}
