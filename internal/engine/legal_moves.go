package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns the legal moves of the piece on cell. Each pseudo-legal
// candidate is applied to the board, the mover's king is tested for attack,
// and the move is undone; pins and discovered checks need no special casing.
// The board is left exactly as it was. The order of the result is not
// meaningful.
func LegalMoves(board *chess.Board, cell chess.Cell) []chess.Move {
	piece := board.Get(cell)
	if !chess.IsOccupied(piece) {
		return nil
	}
	return filterLegal(board, PseudoMoves(board, cell), chess.ExtractColour(piece))
}

// AllLegalMoves returns every legal move for the side to move.
func AllLegalMoves(board *chess.Board) []chess.Move {
	return AppendLegalMoves(nil, board)
}

// AppendLegalMoves appends every legal move for the side to move to moves.
// The search uses it to reuse a buffer per ply.
func AppendLegalMoves(moves []chess.Move, board *chess.Board) []chess.Move {
	colour := board.ToMove
	start := len(moves)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Cell{Row: row, Col: col}
			piece := board.Get(from)
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			moves = appendPseudoMoves(moves, board, from)
		}
	}
	legal := filterLegal(board, moves[start:], colour)
	return moves[:start+len(legal)]
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	var buf [32]chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Cell{Row: row, Col: col}
			piece := board.Get(from)
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			for _, m := range appendPseudoMoves(buf[:0], board, from) {
				if isLegal(board, m, colour) {
					return true
				}
			}
		}
	}
	return false
}

// filterLegal keeps, in place, the moves that do not leave colour's king
// attacked.
func filterLegal(board *chess.Board, moves []chess.Move, colour chess.Colour) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if isLegal(board, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal makes the move, checks whether our king is attacked, and unmakes it.
func isLegal(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	Apply(board, move)
	ok := !IsInCheck(board, colour)
	Undo(board)
	return ok
}

// IsLegalMove reports whether move is among the legal moves of the piece on
// its from-cell. Matching considers the tag and promotion kind.
func IsLegalMove(board *chess.Board, move chess.Move) bool {
	for _, m := range LegalMoves(board, move.From) {
		if m == move {
			return true
		}
	}
	return false
}
