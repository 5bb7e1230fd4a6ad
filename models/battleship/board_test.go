package battleship_test

import (
	"errors"
	"strings"
	"testing"

	cerr "github.com/saeidalz13/sea-battle/internal/error"
	mb "github.com/saeidalz13/sea-battle/models/battleship"
)

func newTestBoard(t *testing.T, ships ...*mb.Ship) *mb.Board {
	t.Helper()

	board := mb.NewBoard(mb.DefaultBoardSize)
	for _, ship := range ships {
		if err := board.PlaceShip(ship); err != nil {
			t.Fatalf("failed to place ship at %v: %v", ship.Bow(), err)
		}
	}
	return board
}

func TestIsOutOfBounds(t *testing.T) {
	board := mb.NewBoard(6)

	tests := []struct {
		name     string
		coords   mb.Coordinates
		expected bool
	}{
		{name: "origin", coords: mb.NewCoordinates(0, 0), expected: false},
		{name: "last cell", coords: mb.NewCoordinates(5, 5), expected: false},
		{name: "x equals size", coords: mb.NewCoordinates(6, 0), expected: true},
		{name: "y equals size", coords: mb.NewCoordinates(0, 6), expected: true},
		{name: "negative x", coords: mb.NewCoordinates(-1, 3), expected: true},
		{name: "negative y", coords: mb.NewCoordinates(3, -1), expected: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := board.IsOutOfBounds(test.coords); got != test.expected {
				t.Fatalf("expected out of bounds: %t\tgot: %t", test.expected, got)
			}
		})
	}
}

func TestPlaceShip(t *testing.T) {
	first := mb.NewShip(mb.NewCoordinates(0, 0), 3, mb.OrientationHorizontal)

	tests := []struct {
		name       string
		ship       *mb.Ship
		expectFail bool
	}{
		{name: "inside the halo", ship: mb.NewShip(mb.NewCoordinates(1, 1), 1, mb.OrientationHorizontal), expectFail: true},
		{name: "overlapping", ship: mb.NewShip(mb.NewCoordinates(2, 0), 2, mb.OrientationVertical), expectFail: true},
		{name: "diagonal corner of halo", ship: mb.NewShip(mb.NewCoordinates(3, 1), 1, mb.OrientationHorizontal), expectFail: true},
		{name: "sticking out of the grid", ship: mb.NewShip(mb.NewCoordinates(4, 4), 3, mb.OrientationVertical), expectFail: true},
		{name: "bow past the edge", ship: mb.NewShip(mb.NewCoordinates(6, 0), 1, mb.OrientationVertical), expectFail: true},
		{name: "one cell gap", ship: mb.NewShip(mb.NewCoordinates(0, 2), 3, mb.OrientationVertical), expectFail: false},
		{name: "far away", ship: mb.NewShip(mb.NewCoordinates(5, 5), 1, mb.OrientationHorizontal), expectFail: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := newTestBoard(t, first)

			err := board.PlaceShip(test.ship)
			if test.expectFail {
				if !errors.Is(err, cerr.ErrInvalidPlacement) {
					t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidPlacement, err)
				}
				if len(board.Ships()) != 1 || board.Remaining() != 1 {
					t.Fatalf("rejected ship must not be added, ships: %d\tremaining: %d", len(board.Ships()), board.Remaining())
				}
				for _, c := range test.ship.Coordinates() {
					if board.IsOutOfBounds(c) || c.Y == 0 {
						continue
					}
					if board.Cell(c) != mb.PositionStateEmpty {
						t.Fatalf("rejected ship must not mark any cell, marked: %v", c)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("expected placement to succeed, got: %v", err)
			}
			for _, c := range test.ship.Coordinates() {
				if board.Cell(c) != mb.PositionStateShip {
					t.Fatalf("expected ship cell at %v", c)
				}
			}
			if board.Remaining() != 2 {
				t.Fatalf("expected remaining: 2\tgot: %d", board.Remaining())
			}
		})
	}
}

func TestPlacementHaloIsNotVisible(t *testing.T) {
	board := newTestBoard(t, mb.NewShip(mb.NewCoordinates(2, 2), 1, mb.OrientationHorizontal))

	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			c := mb.NewCoordinates(x, y)
			if c == mb.NewCoordinates(2, 2) {
				continue
			}
			if board.Cell(c) != mb.PositionStateEmpty {
				t.Fatalf("halo cell %v must stay empty until the ship sinks", c)
			}
		}
	}
}

func TestFireSinksShip(t *testing.T) {
	board := newTestBoard(t, mb.NewShip(mb.NewCoordinates(0, 0), 3, mb.OrientationHorizontal))

	if board.Remaining() != 1 {
		t.Fatalf("expected remaining: 1\tgot: %d", board.Remaining())
	}

	expected := []mb.ShotOutcome{mb.ShotHit, mb.ShotHit, mb.ShotSunk}
	for i, target := range []mb.Coordinates{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}} {
		outcome, err := board.Fire(target)
		if err != nil {
			t.Fatal(err)
		}
		if outcome != expected[i] {
			t.Fatalf("shot %d: expected outcome: %s\tgot: %s", i, expected[i], outcome)
		}
		if board.Cell(target) != mb.PositionStateHit {
			t.Fatalf("expected hit cell at %v", target)
		}
		if i < 2 && board.Remaining() != 1 {
			t.Fatalf("remaining must not drop before the ship sinks, got: %d", board.Remaining())
		}
	}

	if board.Remaining() != 0 || board.Sunk() != 1 {
		t.Fatalf("expected remaining: 0 sunk: 1\tgot remaining: %d sunk: %d", board.Remaining(), board.Sunk())
	}

	// the halo is revealed and cannot be fired upon
	for _, c := range []mb.Coordinates{{X: 0, Y: 1}, {X: 3, Y: 0}, {X: 3, Y: 1}} {
		if board.Cell(c) != mb.PositionStateNearMiss {
			t.Fatalf("expected near miss at %v\tgot: %d", c, board.Cell(c))
		}
		if _, err := board.Fire(c); !errors.Is(err, cerr.ErrAlreadyTargeted) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrAlreadyTargeted, err)
		}
	}
	if board.Cell(mb.NewCoordinates(4, 0)) != mb.PositionStateEmpty {
		t.Fatal("cells beyond the halo must stay empty")
	}
}

func TestFireMissThenRepeat(t *testing.T) {
	board := newTestBoard(t, mb.NewShip(mb.NewCoordinates(0, 0), 3, mb.OrientationHorizontal))
	target := mb.NewCoordinates(5, 5)

	outcome, err := board.Fire(target)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != mb.ShotMiss {
		t.Fatalf("expected outcome: %s\tgot: %s", mb.ShotMiss, outcome)
	}
	if board.Cell(target) != mb.PositionStateMiss {
		t.Fatalf("expected miss cell at %v", target)
	}

	if _, err := board.Fire(target); !errors.Is(err, cerr.ErrAlreadyTargeted) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrAlreadyTargeted, err)
	}
}

func TestFireTwiceAlwaysRejected(t *testing.T) {
	board := newTestBoard(t,
		mb.NewShip(mb.NewCoordinates(0, 0), 2, mb.OrientationVertical),
		mb.NewShip(mb.NewCoordinates(3, 3), 1, mb.OrientationVertical),
	)

	// hit, sunk and miss alike
	for _, target := range []mb.Coordinates{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 5, Y: 0}} {
		if _, err := board.Fire(target); err != nil {
			t.Fatal(err)
		}
		if _, err := board.Fire(target); !errors.Is(err, cerr.ErrAlreadyTargeted) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrAlreadyTargeted, err)
		}
	}
}

func TestFireOutOfBounds(t *testing.T) {
	board := mb.NewBoard(6)

	for _, target := range []mb.Coordinates{{X: 6, Y: 0}, {X: 0, Y: 6}, {X: -1, Y: 0}} {
		if _, err := board.Fire(target); !errors.Is(err, cerr.ErrOutOfBounds) {
			t.Fatalf("expected error: %v\tgot: %v", cerr.ErrOutOfBounds, err)
		}
	}
}

func TestFireNearUnsunkShipIsAllowed(t *testing.T) {
	board := newTestBoard(t, mb.NewShip(mb.NewCoordinates(2, 2), 2, mb.OrientationHorizontal))

	outcome, err := board.Fire(mb.NewCoordinates(1, 2))
	if err != nil {
		t.Fatalf("placement halo must not block firing, got: %v", err)
	}
	if outcome != mb.ShotMiss {
		t.Fatalf("expected outcome: %s\tgot: %s", mb.ShotMiss, outcome)
	}
}

func TestRemainingDropsOncePerShip(t *testing.T) {
	board := newTestBoard(t,
		mb.NewShip(mb.NewCoordinates(0, 0), 2, mb.OrientationHorizontal),
		mb.NewShip(mb.NewCoordinates(0, 3), 1, mb.OrientationHorizontal),
		mb.NewShip(mb.NewCoordinates(4, 4), 1, mb.OrientationHorizontal),
	)

	shots := []struct {
		target    mb.Coordinates
		remaining int
	}{
		{mb.NewCoordinates(0, 0), 3},
		{mb.NewCoordinates(5, 0), 3},
		{mb.NewCoordinates(1, 0), 2},
		{mb.NewCoordinates(0, 3), 1},
		{mb.NewCoordinates(2, 4), 1},
		{mb.NewCoordinates(4, 4), 0},
	}

	for _, shot := range shots {
		if _, err := board.Fire(shot.target); err != nil {
			t.Fatal(err)
		}
		if board.Remaining() != shot.remaining {
			t.Fatalf("after %v expected remaining: %d\tgot: %d", shot.target, shot.remaining, board.Remaining())
		}
	}
}

func TestPlaceShipAfterFireRejected(t *testing.T) {
	board := mb.NewBoard(6)
	if _, err := board.Fire(mb.NewCoordinates(0, 0)); err != nil {
		t.Fatal(err)
	}

	err := board.PlaceShip(mb.NewShip(mb.NewCoordinates(4, 4), 1, mb.OrientationHorizontal))
	if !errors.Is(err, cerr.ErrInvalidPlacement) {
		t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidPlacement, err)
	}
}

func TestHiddenView(t *testing.T) {
	board := newTestBoard(t, mb.NewShip(mb.NewCoordinates(0, 0), 2, mb.OrientationHorizontal))
	if _, err := board.Fire(mb.NewCoordinates(0, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := board.Fire(mb.NewCoordinates(5, 5)); err != nil {
		t.Fatal(err)
	}
	board.SetHidden(true)

	view := board.View()
	if !view.Hidden || view.Remaining != 1 || view.Size != 6 {
		t.Fatalf("unexpected view header: %+v", view)
	}
	if view.Cells[1][0] != int(mb.PositionStateEmpty) {
		t.Fatalf("un-hit ship cell must be concealed, got: %d", view.Cells[1][0])
	}
	if view.Cells[0][0] != int(mb.PositionStateHit) {
		t.Fatalf("hit cell must stay visible, got: %d", view.Cells[0][0])
	}
	if view.Cells[5][5] != int(mb.PositionStateMiss) {
		t.Fatalf("miss cell must stay visible, got: %d", view.Cells[5][5])
	}

	// the view is a copy
	view.Cells[2][2] = int(mb.PositionStateHit)
	if board.Cell(mb.NewCoordinates(2, 2)) != mb.PositionStateEmpty {
		t.Fatal("changing the view must not touch the board")
	}
}

func TestBoardString(t *testing.T) {
	board := newTestBoard(t, mb.NewShip(mb.NewCoordinates(0, 0), 1, mb.OrientationHorizontal))

	lines := strings.Split(board.String(), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines\tgot: %d", len(lines))
	}
	if lines[0] != "  | 1 | 2 | 3 | 4 | 5 | 6 |" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1 | ■ | O | O | O | O | O |" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}

	board.SetHidden(true)
	if strings.Contains(board.String(), "■") {
		t.Fatal("hidden board must not render ships")
	}
}
