package websocket

import (
	"encoding/json"

	"github.com/lunarforge/tictactoe/internal/entity"
)

// Message is the envelope for everything crossing the socket, in both
// directions: an action name and an action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// StartPayload optionally names an existing session to resume.
type StartPayload struct {
	SessionID string `json:"session_id,omitempty"`
}

// MovePayload addresses one of the 9 board cells, row-major.
type MovePayload struct {
	Cell int `json:"cell"`
}

// ResponsePayload carries the answer to any client action. Accepted is
// false for rejected moves, which are expected outcomes: the snapshot
// still describes the unchanged game and Error names the reason.
type ResponsePayload struct {
	Accepted bool         `json:"accepted"`
	Game     *entity.Game `json:"game,omitempty"`
	Error    string       `json:"error,omitempty"`
}
