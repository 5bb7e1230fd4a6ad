package battleship

import "fmt"

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) Offset(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

// Printed 1-indexed, the way players type them
func (c Coordinates) String() string {
	return fmt.Sprintf("%d %d", c.X+1, c.Y+1)
}
