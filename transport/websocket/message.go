package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionTurn    = "game:turn"
	actionState   = "game:state"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type newGamePayload struct {
	Level string `json:"level"`
	Mark  string `json:"mark"`
}

type turnPayload struct {
	Cell entity.Cell `json:"cell"`
}

// GameView is what the client sees after every action.
type GameView struct {
	Board  [][]string `json:"board"`
	Turn   string     `json:"player_turn"`
	Human  string     `json:"human"`
	Level  string     `json:"level"`
	Winner string     `json:"winner,omitempty"`
}

type ResponsePayload struct {
	Game  *GameView    `json:"game,omitempty"`
	Reply *entity.Cell `json:"reply,omitempty"`
	Error string       `json:"error,omitempty"`
}

type response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}
