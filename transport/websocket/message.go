package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/preference"
	"github.com/rocketscienceinc/tictactoe-web/internal/presenter"
)

const (
	ActionConnect = "connect"
	ActionTurn    = "game:turn"
	ActionReset   = "game:reset"
)

var errWrite = errors.New("failed to write message")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Game  *entity.Game    `json:"game,omitempty"`
	View  *presenter.View `json:"view,omitempty"`
	Error string          `json:"error,omitempty"`
}

type client struct {
	conn      *websocket.Conn
	sessionID string
	prefs     preference.Preferences
}

func errUnknownAction(action string) error {
	return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, action)
}

func (that *Server) sendGame(c *client, action string, game entity.Game) error {
	printer := that.prefs.Translator().Printer(c.prefs.Language)
	view := presenter.Build(game, c.prefs.Theme, printer)

	return that.sendMessage(c, action, ResponsePayload{Game: &game, View: &view})
}

func (that *Server) sendError(c *client, action string, err error) error {
	return that.sendMessage(c, action, ResponsePayload{Error: err.Error()})
}

func (that *Server) sendMessage(c *client, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	if err = c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	if err = c.conn.WriteJSON(response); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}
