package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lunarforge/tictactoe/internal/apperror"
)

var errNoSession = errors.New("no session started on this connection")

func (that *Server) handleSessionStart(ctx context.Context, connClient *client, msg *Message) error {
	log := that.logger.With("method", "handleSessionStart")

	var payloadReq StartPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	if payloadReq.SessionID != "" {
		game, err := that.sessions.ResumeSession(ctx, payloadReq.SessionID)
		if err == nil {
			connClient.sessionID = game.ID
			return that.sendMessage(connClient, msg.Action, ResponsePayload{Accepted: true, Game: game})
		}

		if !errors.Is(err, apperror.ErrSessionNotFound) {
			log.Error("failed to resume session", "session_id", payloadReq.SessionID, "error", err)
			return that.sendMessage(connClient, msg.Action, ResponsePayload{Error: "failed to resume session"})
		}

		// expired or unknown ID, fall through to a fresh session
		log.Info("session not found, starting a new one", "session_id", payloadReq.SessionID)
	}

	game, err := that.sessions.StartSession(ctx)
	if err != nil {
		log.Error("failed to start session", "error", err)
		return that.sendMessage(connClient, msg.Action, ResponsePayload{Error: "failed to start session"})
	}

	connClient.sessionID = game.ID
	log.Info("session started", "session_id", game.ID)

	return that.sendMessage(connClient, msg.Action, ResponsePayload{Accepted: true, Game: game})
}

func (that *Server) handleGameMove(ctx context.Context, connClient *client, msg *Message) error {
	log := that.logger.With("method", "handleGameMove")

	if connClient.sessionID == "" {
		return that.sendMessage(connClient, msg.Action, ResponsePayload{Error: errNoSession.Error()})
	}

	var payloadReq MovePayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	game, err := that.sessions.ApplyMove(ctx, connClient.sessionID, payloadReq.Cell)

	// a rejected move is an expected outcome: answer with the unchanged
	// snapshot so the client knows not to re-render
	if apperror.IsRejection(err) {
		return that.sendMessage(connClient, msg.Action, ResponsePayload{
			Accepted: false,
			Game:     game,
			Error:    err.Error(),
		})
	}

	if err != nil {
		log.Error("failed to apply move", "session_id", connClient.sessionID, "cell", payloadReq.Cell, "error", err)
		return that.sendMessage(connClient, msg.Action, ResponsePayload{Error: "failed to apply move"})
	}

	return that.sendMessage(connClient, msg.Action, ResponsePayload{Accepted: true, Game: game})
}

func (that *Server) handleGameReset(ctx context.Context, connClient *client, msg *Message) error {
	log := that.logger.With("method", "handleGameReset")

	if connClient.sessionID == "" {
		return that.sendMessage(connClient, msg.Action, ResponsePayload{Error: errNoSession.Error()})
	}

	game, err := that.sessions.ResetSession(ctx, connClient.sessionID)
	if err != nil {
		log.Error("failed to reset session", "session_id", connClient.sessionID, "error", err)
		return that.sendMessage(connClient, msg.Action, ResponsePayload{Error: "failed to reset session"})
	}

	log.Info("session reset", "session_id", connClient.sessionID)

	return that.sendMessage(connClient, msg.Action, ResponsePayload{Accepted: true, Game: game})
}
