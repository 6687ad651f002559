package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lunarforge/tictactoe/internal/apperror"
	"github.com/lunarforge/tictactoe/internal/engine"
	"github.com/lunarforge/tictactoe/internal/entity"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager owns the lifecycle of game sessions: each session holds
// exactly one engine state, persisted after every accepted mutation so a
// reconnecting client re-renders the same board.
type SessionManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo) *SessionManager {
	return &SessionManager{
		logger: logger,

		sessionRepo: sessionRepo,
	}
}

// StartSession creates a fresh game under a new session ID.
func (that *SessionManager) StartSession(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.sessionRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return game, nil
}

// ResumeSession returns the live snapshot for an existing session ID.
func (that *SessionManager) ResumeSession(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return game, nil
}

// ApplyMove plays the current player's mark on the given cell. A
// rejected move returns the unchanged snapshot together with the
// rejection value; nothing is persisted in that case.
func (that *SessionManager) ApplyMove(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	game, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if err = engine.ApplyMove(game, cell); err != nil {
		if apperror.IsRejection(err) {
			return game, err
		}

		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished",
			"session_id", game.ID,
			"status", game.Status,
			"winner", game.Winner,
		)
	}

	return game, nil
}

// ResetSession restores the session's game to its initial state.
func (that *SessionManager) ResetSession(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	engine.Reset(game)

	if err = that.sessionRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return game, nil
}

// EndSession drops the stored snapshot. Missing sessions are fine: the
// TTL may have collected it already.
func (that *SessionManager) EndSession(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	return nil
}
