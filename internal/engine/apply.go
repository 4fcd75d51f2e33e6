package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Apply plays move on the board and records everything needed to take it
// back. It returns the captured piece, or Empty when nothing was captured.
//
// The move must come from the move generator for this board. Applying a
// move whose from-cell is empty is a programming error and panics.
func Apply(board *chess.Board, move chess.Move) chess.Piece {
	moved := board.Get(move.From)
	if !chess.IsOccupied(moved) {
		panic(fmt.Sprintf("engine: apply %s: no piece on %s", move, move.From))
	}
	colour := chess.ExtractColour(moved)
	kind := chess.ExtractPiece(moved)

	rec := chess.UndoRecord{
		Move:             move,
		Moved:            moved,
		Captured:         board.Get(move.To),
		CapturedAt:       move.To,
		PrevCastle:       board.Castle,
		PrevEnPassant:    board.EnPassant,
		PrevHasEnPassant: board.HasEnPassant,
		PrevHalfmove:     board.HalfmoveClock,
		PrevMoveNumber:   board.MoveNumber,
	}

	switch move.Tag {
	case chess.EnPassant:
		// The victim stands beside the mover, not on the landing cell.
		rec.CapturedAt = chess.Cell{Row: move.From.Row, Col: move.To.Col}
		rec.Captured = board.Get(rec.CapturedAt)
		board.Set(rec.CapturedAt, chess.Empty)

	case chess.CastleKingside, chess.CastleQueenside:
		rookFrom, rookTo := castleRookCells(colour, move.Tag)
		board.Set(rookTo, board.Get(rookFrom))
		board.Set(rookFrom, chess.Empty)
	}

	// Move the piece
	placed := moved
	if move.Tag == chess.Promotion {
		promoted := move.Promotion
		if !chess.IsPromotionPiece(promoted) {
			promoted = chess.Queen // Default to queen
		}
		placed = chess.MakeColouredPiece(colour, promoted)
	}
	board.Set(move.From, chess.Empty)
	board.Set(move.To, placed)

	// Update king position and castling rights
	if kind == chess.King {
		board.SetKingCell(colour, move.To)
		board.Castle.Clear(colour)
	}
	if kind == chess.Rook {
		updateCastlingRightsForRook(&board.Castle, colour, move.From)
	}
	if chess.ExtractPiece(rec.Captured) == chess.Rook {
		updateCastlingRightsForRook(&board.Castle, chess.ExtractColour(rec.Captured), rec.CapturedAt)
	}

	// Set en passant square if double pawn push
	board.HasEnPassant = false
	board.EnPassant = chess.Cell{}
	if move.Tag == chess.DoublePawnPush {
		board.HasEnPassant = true
		board.EnPassant = chess.Cell{Row: (move.From.Row + move.To.Row) / 2, Col: move.From.Col}
	}

	if kind == chess.Pawn || rec.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()

	board.History = append(board.History, rec)
	return rec.Captured
}

// Undo takes back the most recent move. It returns false when there is
// nothing to undo. After Undo the board equals its state before the
// matching Apply in every field.
func Undo(board *chess.Board) bool {
	rec, ok := board.LastMove()
	if !ok {
		return false
	}
	board.History = board.History[:len(board.History)-1]

	move := rec.Move
	colour := chess.ExtractColour(rec.Moved)

	board.Set(move.To, chess.Empty)
	board.Set(rec.CapturedAt, rec.Captured)
	board.Set(move.From, rec.Moved)

	switch move.Tag {
	case chess.CastleKingside, chess.CastleQueenside:
		rookFrom, rookTo := castleRookCells(colour, move.Tag)
		board.Set(rookFrom, board.Get(rookTo))
		board.Set(rookTo, chess.Empty)
	}

	if chess.ExtractPiece(rec.Moved) == chess.King {
		board.SetKingCell(colour, move.From)
	}

	board.Castle = rec.PrevCastle
	board.EnPassant = rec.PrevEnPassant
	board.HasEnPassant = rec.PrevHasEnPassant
	board.HalfmoveClock = rec.PrevHalfmove
	board.MoveNumber = rec.PrevMoveNumber
	board.ToMove = board.ToMove.Opposite()

	return true
}
