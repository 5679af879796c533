package types

import "github.com/quizdeck/trivia-night-backend/internal/game"

// ClientMessage is the single inbound envelope. Role join events are
// "host:join", "team:join", "display:join"; everything else is gated on
// the role the connection announced.
type ClientMessage struct {
	Event    string `json:"event"`
	Name     string `json:"name,omitempty"`     // team:join
	Text     string `json:"text,omitempty"`     // push-question
	Type     string `json:"type,omitempty"`     // push-question
	TeamID   string `json:"teamId,omitempty"`   // award-points, set-score, remove-team
	TeamName string `json:"teamName,omitempty"` // highlight-team, reveal-answer
	Delta    int    `json:"delta,omitempty"`    // award-points
	Score    any    `json:"score,omitempty"`    // set-score; non-numeric coerces to 0
	Mode     string `json:"mode,omitempty"`     // set-display
	Answer   string `json:"answer,omitempty"`   // submit
}

type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type JoinSuccess struct {
	Name     string         `json:"name"`
	Question *game.Question `json:"question"`
}
