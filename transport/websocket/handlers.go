package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-web/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, c *client, msg *Message) error {
	game, err := that.game.GetOrCreateGame(ctx, c.sessionID)
	if err != nil {
		if sendErr := that.sendError(c, msg.Action, errors.New("failed to get the game")); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to get game: %w", err)
	}

	return that.sendGame(c, msg.Action, game)
}

func (that *Server) handleTurn(ctx context.Context, c *client, msg *Message) error {
	var payload TurnPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		return that.sendError(c, msg.Action, fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload))
	}

	game, err := that.game.MakeMove(ctx, c.sessionID, *payload.Cell)
	if err != nil {
		if sendErr := that.sendError(c, msg.Action, errors.New("failed to make move")); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to make move: %w", err)
	}

	return that.sendGame(c, msg.Action, game)
}

func (that *Server) handleReset(ctx context.Context, c *client, msg *Message) error {
	game, err := that.game.ResetGame(ctx, c.sessionID)
	if err != nil {
		if sendErr := that.sendError(c, msg.Action, errors.New("failed to reset game")); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to reset game: %w", err)
	}

	return that.sendGame(c, msg.Action, game)
}
