package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrSessionNotFound = errors.New("session not found")
)

// IsRejection reports whether err is an expected move rejection rather
// than a fault: an occupied cell or a game already decided. Callers use
// it to answer the client instead of failing the request.
func IsRejection(err error) bool {
	return errors.Is(err, ErrCellOccupied) || errors.Is(err, ErrGameFinished) || errors.Is(err, ErrInvalidCell)
}
