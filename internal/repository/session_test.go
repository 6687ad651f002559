package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarforge/tictactoe/internal/apperror"
	"github.com/lunarforge/tictactoe/internal/entity"
	"github.com/lunarforge/tictactoe/testing/suite"
)

const testTTL = time.Hour

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, testTTL)

	// Given: a fresh game snapshot
	game := entity.NewGame("123")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and the key carries a TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// Given: a stored mid-game snapshot
		game := entity.NewGame("123")
		game.Board[4] = entity.PlayerX
		game.Turn = entity.PlayerO

		err := sessionRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrievedGame, err := sessionRepo.GetByID(ctx, game.ID)

		// Then: the retrieved snapshot should match the saved one
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// When: GetByID is called with an unknown ID
		_, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound should be returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("GetByID_KeepsWinningLine", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// Given: a stored won game with a winning line
		game := entity.NewGame("123")
		game.Board = [9]string{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		game.Status = entity.StatusWon
		game.Winner = entity.PlayerX
		game.WinningLine = &[3]int{0, 1, 2}

		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, game))

		// When: the snapshot round-trips through storage
		retrievedGame, err := sessionRepo.GetByID(ctx, game.ID)

		// Then: the terminal state survives intact
		require.NoError(t, err)
		require.NotNil(t, retrievedGame.WinningLine)
		assert.Equal(t, [3]int{0, 1, 2}, *retrievedGame.WinningLine)
		assert.Equal(t, entity.PlayerX, retrievedGame.Winner)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, testTTL)

	// Given: a stored session
	game := entity.NewGame("123")
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, game))

	// When: DeleteByID is called
	err := sessionRepo.DeleteByID(ctx, game.ID)

	// Then: the session is gone
	require.NoError(t, err)

	_, err = sessionRepo.GetByID(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}
