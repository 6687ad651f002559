package engine

import (
	"fmt"

	"github.com/lunarforge/tictactoe/internal/apperror"
	"github.com/lunarforge/tictactoe/internal/entity"
)

// ApplyMove places the current player's mark on the given cell.
//
// A move is accepted only while the game is in progress and the target
// cell is empty; otherwise the call is a no-op and returns one of the
// apperror rejection values. On acceptance the move is scored: a
// completed line ends the game as a win for the mover (the turn does
// not switch), a full board without a line ends it as a draw, and
// anything else passes the turn to the other player.
func ApplyMove(gameInstance *entity.Game, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	gameInstance.Board[cell] = gameInstance.Turn
	scoreMove(gameInstance)

	return nil
}

// Reset unconditionally restores the initial state: all cells empty,
// X to move, game in progress. The session ID is kept.
func Reset(gameInstance *entity.Game) {
	gameInstance.Board = [9]string{}
	gameInstance.Turn = entity.PlayerX
	gameInstance.Status = entity.StatusInProgress
	gameInstance.Winner = ""
	gameInstance.WinningLine = nil
}

// scoreMove - updates the game status after an accepted move.
// The win check runs before the draw check: a board that is both full
// and holds a line is a win, not a draw.
func scoreMove(gameInstance *entity.Game) {
	if line, ok := findWinningLine(gameInstance.Board); ok {
		gameInstance.Status = entity.StatusWon
		gameInstance.Winner = gameInstance.Turn
		gameInstance.WinningLine = &line
		return
	}

	if boardFull(gameInstance.Board) {
		gameInstance.Status = entity.StatusDraw
		return
	}

	gameInstance.Turn = toggleMark(gameInstance.Turn)
}

// findWinningLine - scans the 8 fixed patterns in their defined order
// and returns the first one whose three cells hold the same mark.
func findWinningLine(board [9]string) ([3]int, bool) {
	for _, pattern := range entity.WinPatterns {
		a, b, c := board[pattern[0]], board[pattern[1]], board[pattern[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return pattern, true
		}
	}

	return [3]int{}, false
}

func boardFull(board [9]string) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
