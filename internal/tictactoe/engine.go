package tictactoe

import "github.com/rocketscienceinc/tictactoe-web/internal/entity"

// WinTriples lists the winning lines in the order Evaluate checks them:
// rows, then columns, then diagonals.
var WinTriples = [...]entity.Triple{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ApplyMove places the current player's marker on cell and passes the turn.
// Moves on an occupied or out of range cell, or after the game is decided,
// are ignored and state is returned as is.
func ApplyMove(state entity.Game, cell int) entity.Game {
	if !state.CanPlay(cell) {
		return state
	}

	state.Board[cell] = state.Turn
	state.Turn = state.Turn.Opponent()
	state.Outcome = Evaluate(state.Board)

	return state
}

// Evaluate returns the first completed line, a draw for a full board, or no outcome.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range WinTriples {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Outcome{Kind: entity.OutcomeWin, Winner: a, Line: line}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.Outcome{Kind: entity.OutcomeNone}
	}

	return entity.Outcome{Kind: entity.OutcomeDraw}
}

// Reset returns an empty board with X to move.
func Reset() entity.Game {
	return entity.NewGame()
}
