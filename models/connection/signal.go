package connection

const (
	CodeSessionID uint8 = iota

	// the gameUuid query does not match a running game
	CodeInvalidGameUuid

	// both boards as the spectator is allowed to see them
	CodeSnapshot
	CodeShot
	CodeRejectedShot
	CodeEndGame
	CodeInvalidSignal
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
