package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Status derives the game status of the side to move from whether its king
// is attacked and whether it has any legal move.
func Status(board *chess.Board) chess.GameStatus {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	canMove := HasLegalMoves(board, colour)

	switch {
	case inCheck && !canMove:
		return chess.Checkmate
	case !canMove:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	default:
		return chess.InProgress
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Winner returns the side that delivered mate. ok is false unless the side
// to move is checkmated.
func Winner(board *chess.Board) (winner chess.Colour, ok bool) {
	if !IsCheckmate(board) {
		return chess.White, false
	}
	return board.ToMove.Opposite(), true
}
