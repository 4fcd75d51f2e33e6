package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustBoard builds a board from FEN.
// It calls t.Fatal if the FEN does not parse.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board
}

// MustMove parses move text (coordinate or SAN) against a board.
// It calls t.Fatal if the text is not a legal move.
func MustMove(t testing.TB, board *chess.Board, text string) chess.Move {
	t.Helper()
	m, err := engine.ParseMove(board, text)
	if err != nil {
		t.Fatalf("failed to parse move %q in %s: %v", text, engine.BoardToFEN(board), err)
	}
	return m
}

// PlayMoves applies each move text in turn and returns the board.
func PlayMoves(t testing.TB, board *chess.Board, texts ...string) *chess.Board {
	t.Helper()
	for _, text := range texts {
		engine.Apply(board, MustMove(t, board, text))
	}
	return board
}

// AssertBoardEqual compares two boards field by field. A nil history and an
// empty one are treated as equal.
func AssertBoardEqual(t testing.TB, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		fail(t, msgAndArgs, "board mismatch (-want +got):\n%s", diff)
	}
}
