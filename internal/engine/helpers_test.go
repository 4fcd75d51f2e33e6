package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Reference positions used across the engine tests.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	enPassantFEN = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
	castlingFEN  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

// referenceFENs is a spread of positions exercising every move kind.
var referenceFENs = []string{
	InitialFEN,
	kiwipeteFEN,
	position3FEN,
	position4FEN,
	position5FEN,
	enPassantFEN,
	castlingFEN,
	"4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1",
}

func mustFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func mustMove(t testing.TB, board *chess.Board, text string) chess.Move {
	t.Helper()
	m, err := ParseMove(board, text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

// playMoves applies a sequence of move texts.
func playMoves(t testing.TB, board *chess.Board, texts ...string) {
	t.Helper()
	for _, text := range texts {
		Apply(board, mustMove(t, board, text))
	}
}

// moveStrings returns the coordinate text of moves, sorted.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// boardDiff compares two boards field by field, treating a nil history and
// an empty one as equal.
func boardDiff(want, got *chess.Board) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}
