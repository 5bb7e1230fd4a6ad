package connection

import (
	mb "github.com/saeidalz13/sea-battle/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespSnapshot struct {
	GameUuid   string       `json:"game_uuid"`
	MatchState string       `json:"match_state"`
	Moves      int          `json:"moves"`
	HumanBoard mb.BoardView `json:"human_board"`
	BotBoard   mb.BoardView `json:"bot_board"`
}

func NewRespSnapshot(game *mb.Game) RespSnapshot {
	return RespSnapshot{
		GameUuid:   game.Uuid(),
		MatchState: game.State().String(),
		Moves:      game.Moves(),
		HumanBoard: game.Human().Board().View(),
		BotBoard:   game.Bot().Board().View(),
	}
}

type RespShot struct {
	Shooter string `json:"shooter"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Outcome string `json:"outcome"`

	// ships left on the board that was fired at
	Remaining int `json:"remaining"`
}

type RespEndGame struct {
	MatchState string `json:"match_state"`
	Winner     string `json:"winner"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
