package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameStatus
	}{
		{"initial position", InitialFEN, chess.InProgress},
		{"check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", chess.Check},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.Checkmate},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", chess.Checkmate},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Stalemate},
		{"pawn stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", chess.Stalemate},
		{"quiet endgame", "4k3/8/8/8/8/8/8/R3K3 b - - 0 1", chess.InProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := Status(board); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBackRankMate(t *testing.T) {
	board := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	playMoves(t, board, "a1a8")

	if got := Status(board); got != chess.Checkmate {
		t.Fatalf("Status() = %v, want checkmate", got)
	}
	if HasLegalMoves(board, chess.Black) {
		t.Error("mated side still has legal moves")
	}
	if moves := AllLegalMoves(board); len(moves) != 0 {
		t.Errorf("AllLegalMoves() = %v, want none", moves)
	}
	winner, ok := Winner(board)
	if !ok || winner != chess.White {
		t.Errorf("Winner() = %v %v, want White true", winner, ok)
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		expect bool
	}{
		{"initial", InitialFEN, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"stalemate is not mate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := IsCheckmate(board); got != tt.expect {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		expect bool
	}{
		{"initial", InitialFEN, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", true},
		{"mate is not stalemate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if got := IsStalemate(board); got != tt.expect {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestWinner_NotMate(t *testing.T) {
	if _, ok := Winner(NewInitialBoard()); ok {
		t.Error("Winner() reported a winner in the initial position")
	}
}
