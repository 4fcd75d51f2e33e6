package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// DrawRuleResult contains the results of draw rule detection. The rules are
// reported only; Status never ends a game on them.
type DrawRuleResult struct {
	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// Has3FoldRepetition is true if any position occurred 3 or more times,
	// which lets a player claim a draw.
	Has3FoldRepetition bool

	// HasInsufficientMaterial is true if the current position has
	// insufficient mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the game started with unequal material.
	HasMaterialOdds bool
}

// AnalyzeDrawRules analyzes the game recorded on board for draw conditions.
// Earlier positions are recovered by undoing the history on a copy, so the
// board itself is not modified.
func AnalyzeDrawRules(board *chess.Board) DrawRuleResult {
	result := DrawRuleResult{
		HasInsufficientMaterial: HasInsufficientMaterial(board),
	}

	replay := board.Copy()
	positions := hashing.NewPositionCounter()
	for {
		positions.Add(replay)
		if replay.HalfmoveClock >= 150 {
			result.Has75MoveRule = true
		}
		if !Undo(replay) {
			break
		}
	}

	result.Has3FoldRepetition = positions.MaxRepetitions() >= 3
	result.Has5FoldRepetition = positions.MaxRepetitions() >= 5
	result.HasMaterialOdds = !isStandardMaterial(replay)

	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			cell := chess.Cell{Row: row, Col: col}
			piece := board.Get(cell)
			if !chess.IsOccupied(piece) {
				continue
			}

			colour := chess.ExtractColour(piece)
			pieceType := chess.ExtractPiece(piece)

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = cell.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = cell.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	// Standard material: 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side
	expected := map[chess.Piece]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	actual := make(map[chess.Piece]int)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if piece := board.Get(chess.Cell{Row: row, Col: col}); chess.IsOccupied(piece) {
				actual[piece]++
			}
		}
	}

	for kind, n := range expected {
		if actual[chess.W(kind)] != n || actual[chess.B(kind)] != n {
			return false
		}
	}
	return true
}
