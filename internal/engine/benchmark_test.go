package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": enPassantFEN,
	"Castling":  castlingFEN,
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", InitialFEN, "e2e4"},
		{"PieceMove", InitialFEN, "g1f3"},
		{"KingsideCastle", castlingFEN, "e1g1"},
		{"QueensideCastle", castlingFEN, "e1c1"},
		{"EnPassant", enPassantFEN, "f5e6"},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8q"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			board := mustFEN(b, tt.fen)
			m := mustMove(b, board, tt.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Apply(board, m)
				Undo(board)
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := NewInitialBoard()
		playMoves(b, board, moves...)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board := NewInitialBoard()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board := mustFEN(b, checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board := mustFEN(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	board := mustFEN(b, kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AllLegalMoves(board)
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board := mustFEN(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
