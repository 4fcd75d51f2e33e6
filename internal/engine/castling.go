package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// homeRow returns the grid row of a colour's back rank.
func homeRow(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}

// Columns of the standard castling squares.
const (
	kingHomeCol      = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// castleRookCells returns where the rook stands before and after castling.
func castleRookCells(colour chess.Colour, tag chess.MoveTag) (from, to chess.Cell) {
	row := homeRow(colour)
	if tag == chess.CastleKingside {
		return chess.Cell{Row: row, Col: kingsideRookCol}, chess.Cell{Row: row, Col: 5}
	}
	return chess.Cell{Row: row, Col: queensideRookCol}, chess.Cell{Row: row, Col: 3}
}

// appendCastleMoves appends the castling candidates of the king on from.
// The landing square is left to the legality filter; everything else the
// rules require is checked here.
func appendCastleMoves(moves []chess.Move, board *chess.Board, from chess.Cell, colour chess.Colour) []chess.Move {
	row := homeRow(colour)
	if from != (chess.Cell{Row: row, Col: kingHomeCol}) {
		return moves
	}
	enemy := colour.Opposite()
	if IsAttacked(board, from, enemy) {
		return moves
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if board.Castle.Kingside(colour) &&
		board.Get(chess.Cell{Row: row, Col: kingsideRookCol}) == rook &&
		cellsEmpty(board, row, 5, 6) &&
		!IsAttacked(board, chess.Cell{Row: row, Col: 5}, enemy) {
		moves = append(moves, chess.Move{From: from, To: chess.Cell{Row: row, Col: 6}, Tag: chess.CastleKingside})
	}

	if board.Castle.Queenside(colour) &&
		board.Get(chess.Cell{Row: row, Col: queensideRookCol}) == rook &&
		cellsEmpty(board, row, 1, 3) &&
		!IsAttacked(board, chess.Cell{Row: row, Col: 3}, enemy) {
		moves = append(moves, chess.Move{From: from, To: chess.Cell{Row: row, Col: 2}, Tag: chess.CastleQueenside})
	}

	return moves
}

// cellsEmpty reports whether columns first..last of a row are all empty.
func cellsEmpty(board *chess.Board, row, first, last int) bool {
	for col := first; col <= last; col++ {
		if board.Get(chess.Cell{Row: row, Col: col}) != chess.Empty {
			return false
		}
	}
	return true
}

// updateCastlingRightsForRook removes the right tied to a rook's home cell
// when a rook leaves it or is captured on it.
func updateCastlingRightsForRook(rights *chess.CastleRights, colour chess.Colour, cell chess.Cell) {
	if cell.Row != homeRow(colour) {
		return
	}
	switch {
	case colour == chess.White && cell.Col == kingsideRookCol:
		rights.WhiteKingside = false
	case colour == chess.White && cell.Col == queensideRookCol:
		rights.WhiteQueenside = false
	case colour == chess.Black && cell.Col == kingsideRookCol:
		rights.BlackKingside = false
	case colour == chess.Black && cell.Col == queensideRookCol:
		rights.BlackQueenside = false
	}
}
