package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// oracleMoves lists the legal moves of an independent move generator in
// coordinate notation.
func oracleMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil.FEN(%q) error: %v", fen, err)
	}
	game := notnil.NewGame(opt)
	var out []string
	for _, m := range game.ValidMoves() {
		out = append(out, notnil.UCINotation{}.Encode(game.Position(), m))
	}
	sort.Strings(out)
	return out
}

func TestAllLegalMoves_MatchesOracle(t *testing.T) {
	for _, fen := range referenceFENs {
		t.Run(fen, func(t *testing.T) {
			board := mustFEN(t, fen)
			got := moveStrings(AllLegalMoves(board))
			want := oracleMoves(t, fen)
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("legal moves mismatch (-oracle +engine):\n%s", diff)
			}
		})
	}
}

func TestAllLegalMoves_InitialPosition(t *testing.T) {
	board := NewInitialBoard()
	if got := len(AllLegalMoves(board)); got != 20 {
		t.Errorf("initial position has %d legal moves, want 20", got)
	}
}

func TestLegalMoves_NeverLeaveKingAttacked(t *testing.T) {
	for _, fen := range referenceFENs {
		board := mustFEN(t, fen)
		mover := board.ToMove
		for _, m := range AllLegalMoves(board) {
			Apply(board, m)
			if IsInCheck(board, mover) {
				t.Errorf("%s: %s leaves the %v king attacked", fen, m, mover)
			}
			Undo(board)
		}
	}
}

func TestLegalMoves_LeavesBoardUnchanged(t *testing.T) {
	for _, fen := range referenceFENs {
		board := mustFEN(t, fen)
		before := board.Copy()
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				LegalMoves(board, chess.Cell{Row: row, Col: col})
			}
		}
		if diff := boardDiff(before, board); diff != "" {
			t.Errorf("%s: board changed by LegalMoves (-want +got):\n%s", fen, diff)
		}
	}
}

func TestLegalMoves_PerPiece(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		cell string
		want []string
	}{
		{
			name: "empty cell",
			fen:  InitialFEN,
			cell: "e4",
			want: []string{},
		},
		{
			name: "pawn on start row",
			fen:  InitialFEN,
			cell: "e2",
			want: []string{"e2e3", "e2e4"},
		},
		{
			name: "knight from corner",
			fen:  InitialFEN,
			cell: "b1",
			want: []string{"b1a3", "b1c3"},
		},
		{
			name: "blocked bishop",
			fen:  InitialFEN,
			cell: "c1",
			want: []string{},
		},
		{
			name: "pinned knight",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			cell: "e2",
			want: []string{},
		},
		{
			name: "pinned rook moves along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			cell: "e2",
			want: []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7"},
		},
		{
			name: "pawn blocked",
			fen:  "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1",
			cell: "e2",
			want: []string{},
		},
		{
			name: "double push blocked on far square",
			fen:  "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			cell: "e2",
			want: []string{"e2e3"},
		},
		{
			name: "pawn captures",
			fen:  "4k3/8/8/8/8/3p1b2/4P3/4K3 w - - 0 1",
			cell: "e2",
			want: []string{"e2d3", "e2e3", "e2e4", "e2f3"},
		},
		{
			name: "king cannot step into attack",
			fen:  "4k3/8/8/8/8/8/r7/4K3 w - - 0 1",
			cell: "e1",
			want: []string{"e1d1", "e1f1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			got := moveStrings(LegalMoves(board, chess.MustCell(tt.cell)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMoves(%s) mismatch (-want +got):\n%s", tt.cell, diff)
			}
		})
	}
}

func TestLegalMoves_Promotion(t *testing.T) {
	board := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves := LegalMoves(board, chess.MustCell("a7"))

	if len(moves) != 4 {
		t.Fatalf("got %d promotion moves, want 4", len(moves))
	}
	seen := map[chess.Piece]bool{}
	for _, m := range moves {
		if m.Tag != chess.Promotion {
			t.Errorf("move %s has tag %v, want Promotion", m, m.Tag)
		}
		if m.To != chess.MustCell("a8") {
			t.Errorf("move %s lands on %s, want a8", m, m.To)
		}
		seen[m.Promotion] = true
	}
	for _, kind := range chess.PromotionPieces {
		if !seen[kind] {
			t.Errorf("missing promotion to %v", kind)
		}
	}
}

func TestLegalMoves_EnPassantOnlyImmediately(t *testing.T) {
	board := mustFEN(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	e5 := chess.MustCell("e5")

	playMoves(t, board, "d7d5")
	if !containsMove(LegalMoves(board, e5), "e5d6") {
		t.Fatal("en passant not available right after the double push")
	}

	playMoves(t, board, "e1e2", "e8e7")
	if containsMove(LegalMoves(board, e5), "e5d6") {
		t.Error("en passant still available a move later")
	}
}

func TestLegalMoves_EnPassantExposingKing(t *testing.T) {
	board := mustFEN(t, "8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1")
	if containsMove(LegalMoves(board, chess.MustCell("e4")), "e4d3") {
		t.Error("en passant that exposes the king along the rank was allowed")
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		expect bool
	}{
		{"initial white", InitialFEN, chess.White, true},
		{"initial black", InitialFEN, chess.Black, true},
		{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, false},
		{"stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := HasLegalMoves(board, tt.colour); got != tt.expect {
				t.Errorf("HasLegalMoves(%v) = %v, want %v", tt.colour, got, tt.expect)
			}
		})
	}
}

func TestIsLegalMove(t *testing.T) {
	board := NewInitialBoard()
	if !IsLegalMove(board, chess.Move{From: chess.MustCell("e2"), To: chess.MustCell("e4"), Tag: chess.DoublePawnPush}) {
		t.Error("e2e4 should be legal")
	}
	if IsLegalMove(board, chess.Move{From: chess.MustCell("e2"), To: chess.MustCell("e5")}) {
		t.Error("e2e5 should not be legal")
	}
}

func containsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
