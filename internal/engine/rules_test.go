package engine

import (
	"testing"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen)
			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAnalyzeDrawRules_EmptyGame tests analyzing a game with no moves
func TestAnalyzeDrawRules_EmptyGame(t *testing.T) {
	result := AnalyzeDrawRules(NewInitialBoard())

	if result.Has75MoveRule {
		t.Errorf("AnalyzeDrawRules(empty game).Has75MoveRule = true, want false")
	}
	if result.Has5FoldRepetition || result.Has3FoldRepetition {
		t.Errorf("AnalyzeDrawRules(empty game) reported repetition")
	}
	if result.HasInsufficientMaterial {
		t.Errorf("AnalyzeDrawRules(empty game).HasInsufficientMaterial = true, want false")
	}
	if result.HasMaterialOdds {
		t.Errorf("AnalyzeDrawRules(empty game).HasMaterialOdds = true, want false")
	}
}

// TestAnalyzeDrawRules_Repetition shuffles knights back and forth.
func TestAnalyzeDrawRules_Repetition(t *testing.T) {
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	tests := []struct {
		name      string
		cycles    int
		wantThree bool
		wantFive  bool
	}{
		{"one cycle", 1, false, false},
		{"two cycles", 2, true, false},
		{"four cycles", 4, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewInitialBoard()
			for i := 0; i < tt.cycles; i++ {
				playMoves(t, board, shuffle...)
			}
			before := board.Copy()

			result := AnalyzeDrawRules(board)
			if result.Has3FoldRepetition != tt.wantThree {
				t.Errorf("Has3FoldRepetition = %v, want %v", result.Has3FoldRepetition, tt.wantThree)
			}
			if result.Has5FoldRepetition != tt.wantFive {
				t.Errorf("Has5FoldRepetition = %v, want %v", result.Has5FoldRepetition, tt.wantFive)
			}
			if diff := boardDiff(before, board); diff != "" {
				t.Errorf("AnalyzeDrawRules changed the board (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeDrawRules_75MoveRule(t *testing.T) {
	board := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 149 100")
	if AnalyzeDrawRules(board).Has75MoveRule {
		t.Fatal("75-move rule reported before the 150th half-move")
	}

	playMoves(t, board, "a1a2")
	if !AnalyzeDrawRules(board).Has75MoveRule {
		t.Error("75-move rule not reported at 150 half-moves")
	}
}

// TestAnalyzeDrawRules_MaterialOdds tests detecting material odds
func TestAnalyzeDrawRules_MaterialOdds(t *testing.T) {
	// Missing white rook
	board := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w Qkq - 0 1")
	playMoves(t, board, "e2e4")

	if !AnalyzeDrawRules(board).HasMaterialOdds {
		t.Errorf("AnalyzeDrawRules(game with missing rook).HasMaterialOdds = false, want true")
	}
}

// TestIsStandardMaterial tests the isStandardMaterial function
func TestIsStandardMaterial(t *testing.T) {
	if !isStandardMaterial(NewInitialBoard()) {
		t.Errorf("isStandardMaterial(initial board) = false, want true")
	}
	if isStandardMaterial(mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w Qkq - 0 1")) {
		t.Errorf("isStandardMaterial(position with missing rook) = true, want false")
	}
	if isStandardMaterial(mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")) {
		t.Errorf("isStandardMaterial(K vs K) = true, want false")
	}
}
