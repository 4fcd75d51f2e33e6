// Package search selects moves for the computer side: a random pick, a
// greedy one-ply pick, or a fixed-depth minimax with alpha-beta pruning over
// a material evaluation.
package search

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pieceValues indexed by piece kind. Kings score nothing.
var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// PieceValue returns the material value of a piece kind.
func PieceValue(kind chess.Piece) int {
	if kind < 0 || int(kind) >= len(pieceValues) {
		return 0
	}
	return pieceValues[kind]
}

// Evaluate returns the material balance: positive favours White.
func Evaluate(board *chess.Board) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !chess.IsOccupied(piece) {
				continue
			}
			value := pieceValues[chess.ExtractPiece(piece)]
			if chess.ExtractColour(piece) == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}
