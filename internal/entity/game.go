package entity

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// WinPatterns are the only cell triples ever checked for a win,
// in scan order: rows top to bottom, columns left to right, then
// the two diagonals.
var WinPatterns = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the full state snapshot of one session: the 3x3 board in
// row-major order, whose turn it is, and how the game ended if it did.
// Winner and WinningLine are set only while Status is StatusWon.
type Game struct {
	ID          string    `json:"id"`
	Board       [9]string `json:"board"`
	Turn        string    `json:"player_turn"`
	Status      string    `json:"status"`
	Winner      string    `json:"winner,omitempty"`
	WinningLine *[3]int   `json:"winning_line,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{},
		Turn:   PlayerX,
		Status: StatusInProgress,
	}
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// IsFinished reports whether the game reached a terminal state.
func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}
