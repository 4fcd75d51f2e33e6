package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Direction tables shared by the attack oracle and the move generator,
// as (row, col) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// pawnRowStep returns the row delta a pawn of the given colour moves by.
// White moves up the grid towards row 0.
func pawnRowStep(colour chess.Colour) int {
	return -chess.ColourOffset(colour)
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsAttacked(board, board.KingCell(colour), colour.Opposite())
}

// IsAttacked returns true if any piece of byColour attacks the cell. It
// looks only at piece patterns and occupancy, never at whose turn it is,
// and never consults the move generator.
func IsAttacked(board *chess.Board, cell chess.Cell, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one row behind the target
	// from the attacker's point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRow := cell.Row - pawnRowStep(byColour)
	for _, dc := range [2]int{-1, 1} {
		if board.Get(chess.Cell{Row: pawnRow, Col: cell.Col + dc}) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(cell.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(cell.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if p := firstPieceOnRay(board, cell, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if p := firstPieceOnRay(board, cell, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceOnRay walks from cell in direction dir and returns the first
// occupant met, or Off if the ray leaves the board first.
func firstPieceOnRay(board *chess.Board, cell chess.Cell, dir [2]int) chess.Piece {
	c := cell.Offset(dir[0], dir[1])
	for {
		piece := board.Get(c)
		if piece != chess.Empty {
			return piece
		}
		c = c.Offset(dir[0], dir[1])
	}
}
