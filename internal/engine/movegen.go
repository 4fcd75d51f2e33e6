package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// PseudoMoves returns the moves of the piece on cell that obey its movement
// pattern and board occupancy. They may leave the mover's king attacked.
// An empty cell yields no moves.
func PseudoMoves(board *chess.Board, cell chess.Cell) []chess.Move {
	return appendPseudoMoves(nil, board, cell)
}

// appendPseudoMoves appends the pseudo-legal moves of the piece on from.
func appendPseudoMoves(moves []chess.Move, board *chess.Board, from chess.Cell) []chess.Move {
	piece := board.Get(from)
	if !chess.IsOccupied(piece) {
		return moves
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, colour)
	case chess.Knight:
		return appendStepMoves(moves, board, from, colour, knightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(moves, board, from, colour, diagonalDirs[:])
	case chess.Rook:
		return appendSlidingMoves(moves, board, from, colour, straightDirs[:])
	case chess.Queen:
		moves = appendSlidingMoves(moves, board, from, colour, straightDirs[:])
		return appendSlidingMoves(moves, board, from, colour, diagonalDirs[:])
	case chess.King:
		moves = appendStepMoves(moves, board, from, colour, kingOffsets[:])
		return appendCastleMoves(moves, board, from, colour)
	}
	return moves
}

// appendStepMoves appends single-step moves (knight, king) onto empty or
// enemy-occupied cells.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Cell, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if canLandOn(board.Get(to), colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves ray-casts in each direction, stopping at the first
// occupied cell, which is included only if it holds an enemy piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Cell, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for {
			target := board.Get(to)
			if target == chess.Off {
				break
			}
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// canLandOn reports whether a piece of colour may move onto a cell holding
// target: it must be on the board and empty or enemy-occupied.
func canLandOn(target chess.Piece, colour chess.Colour) bool {
	if target == chess.Off {
		return false
	}
	return target == chess.Empty || chess.ExtractColour(target) != colour
}
