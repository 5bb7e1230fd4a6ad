package error

import (
	"errors"
	"fmt"
)

// Recoverable rule violations. Callers retry with another
// placement or another target when they see one of these.
var (
	ErrInvalidPlacement = errors.New("invalid ship placement")
	ErrOutOfBounds      = errors.New("position out of grid bound")
	ErrAlreadyTargeted  = errors.New("position already targeted")
)

func ErrShipPlacementInvalid(x, y int) error {
	return fmt.Errorf("%w: cell is out of grid or too close to another ship\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrBoardAlreadyInPlay() error {
	return fmt.Errorf("%w: board already received fire", ErrInvalidPlacement)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w: you are trying to fire off the board\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrPositionAlreadyTargeted(x, y int) error {
	return fmt.Errorf("%w: you already fired at this cell\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

// IsRecoverable reports whether err is one of the rule
// violations a player may retry after.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidPlacement) || errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrInvalidEnvInt(key, value string) error {
	return fmt.Errorf("env %s must be a non-negative integer, got: %q", key, value)
}
