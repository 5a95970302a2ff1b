package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
)

func (that *Server) handleNewGame(ctx context.Context, client *connection, message *Message) error {
	log := that.logger.With("method", "handleNewGame")

	var payload newGamePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendError(client, "invalid payload")
	}

	session, reply, err := that.sessions.StartSession(ctx, payload.Level, payload.Mark)
	if err != nil {
		log.Error("failed to start session", "level", payload.Level, "mark", payload.Mark, "error", err)
		return that.sendError(client, err.Error())
	}

	client.session = session

	log.Info("game started", "level", session.Level, "human", session.Human)

	return that.sendState(client, reply)
}

func (that *Server) handleTurn(ctx context.Context, client *connection, message *Message) error {
	log := that.logger.With("method", "handleTurn")

	if client.session == nil {
		return that.sendError(client, "no game in progress")
	}

	var payload turnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return that.sendError(client, "invalid payload")
	}

	reply, err := that.sessions.SessionTurn(ctx, client.session, payload.Cell)
	switch {
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return that.sendError(client, err.Error())
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.sendError(client, "failed to make turn")
	}

	return that.sendState(client, reply)
}
