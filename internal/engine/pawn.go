package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnStartRow returns the grid row a colour's pawns start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// promotionRow returns the grid row on which a colour's pawns promote.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return 7
}

// appendPawnMoves appends the pseudo-legal moves of the pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Cell, colour chess.Colour) []chess.Move {
	step := pawnRowStep(colour)

	// Forward pushes
	one := from.Offset(step, 0)
	if board.Get(one) == chess.Empty {
		moves = appendPawnMove(moves, from, one, colour)
		if from.Row == pawnStartRow(colour) {
			two := from.Offset(2*step, 0)
			if board.Get(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two, Tag: chess.DoublePawnPush})
			}
		}
	}

	// Captures
	enemyPawn := chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(step, dc)
		target := board.Get(to)
		if chess.IsOccupied(target) && chess.ExtractColour(target) != colour {
			moves = appendPawnMove(moves, from, to, colour)
			continue
		}
		// En passant: the victim stands beside us on the target's file.
		if board.HasEnPassant && to == board.EnPassant && target == chess.Empty &&
			board.Get(chess.Cell{Row: from.Row, Col: to.Col}) == enemyPawn {
			moves = append(moves, chess.Move{From: from, To: to, Tag: chess.EnPassant})
		}
	}

	return moves
}

// appendPawnMove appends a single-step pawn move, expanding it into one
// move per promotion piece when it lands on the far rank.
func appendPawnMove(moves []chess.Move, from, to chess.Cell, colour chess.Colour) []chess.Move {
	if to.Row != promotionRow(colour) {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, kind := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Tag: chess.Promotion, Promotion: kind})
	}
	return moves
}
