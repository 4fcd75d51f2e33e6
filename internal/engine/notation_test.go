package engine

import (
	goerrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestMoveToSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", InitialFEN, "e2e4", "e4"},
		{"knight", InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"en passant", enPassantFEN, "f5e6", "fxe6"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", "a1c1", "Rac1"},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R5K1 w - - 0 1", "a1a3", "R1a3"},
		{"promotion with check", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q+"},
		{"underpromotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", "a8=N"},
		{"kingside castle", castlingFEN, "e1g1", "O-O"},
		{"queenside castle", castlingFEN, "e1c1", "O-O-O"},
		{"mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", "Ra8#"},
		{"fool's mate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", "d8h4", "Qh4#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			before := board.Copy()
			got := MoveToSAN(board, mustMove(t, board, tt.move))
			if got != tt.want {
				t.Errorf("MoveToSAN(%s) = %q, want %q", tt.move, got, tt.want)
			}
			if diff := boardDiff(before, board); diff != "" {
				t.Errorf("MoveToSAN changed the board (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		text    string
		want    string
		wantErr error
	}{
		{"coordinate", InitialFEN, "e2e4", "e2e4", nil},
		{"SAN pawn", InitialFEN, "e4", "e2e4", nil},
		{"SAN knight", InitialFEN, "Nf3", "g1f3", nil},
		{"SAN with check mark", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "Ra8+", "a1a8", nil},
		{"castle with zeros", castlingFEN, "0-0", "e1g1", nil},
		{"castle as king move", castlingFEN, "e1c1", "e1c1", nil},
		{"coordinate promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8r", "a7a8r", nil},
		{"SAN promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=B", "a7a8b", nil},
		{"promotion missing piece", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8", "", errors.ErrInvalidPromotion},
		{"SAN promotion missing piece", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8", "", errors.ErrInvalidPromotion},
		{"SAN capture promotion missing piece", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "axb8+", "", errors.ErrInvalidPromotion},
		{"SAN push onto blocked promotion", "n3k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8", "", errors.ErrIllegalMove},
		{"promotion letter on normal move", InitialFEN, "e2e4q", "", errors.ErrIllegalMove},
		{"bad promotion letter", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8k", "", errors.ErrIllegalMove},
		{"illegal coordinate", InitialFEN, "e2e5", "", errors.ErrIllegalMove},
		{"wrong side", InitialFEN, "e7e5", "", errors.ErrIllegalMove},
		{"nonsense", InitialFEN, "hello", "", errors.ErrIllegalMove},
		{"empty", InitialFEN, "  ", "", errors.ErrParseFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			m, err := ParseMove(board, tt.text)
			if tt.wantErr != nil {
				if !goerrors.Is(err, tt.wantErr) {
					t.Errorf("ParseMove(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if m.String() != tt.want {
				t.Errorf("ParseMove(%q) = %s, want %s", tt.text, m, tt.want)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		text      string
		from, to  string
		promotion chess.Piece
		wantErr   error
	}{
		{"e2e4", "e2", "e4", chess.Empty, nil},
		{"e7e8q", "e7", "e8", chess.Queen, nil},
		{"a2a1N", "a2", "a1", chess.Knight, nil},
		{"e2", "", "", chess.Empty, errors.ErrParseFailure},
		{"i2e4", "", "", chess.Empty, errors.ErrParseFailure},
		{"e2e9", "", "", chess.Empty, errors.ErrParseFailure},
		{"e7e8k", "", "", chess.Empty, errors.ErrInvalidPromotion},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			from, to, promotion, err := ParseCoordinate(tt.text)
			if tt.wantErr != nil {
				if !goerrors.Is(err, tt.wantErr) {
					t.Errorf("ParseCoordinate(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) error: %v", tt.text, err)
			}
			if from.String() != tt.from || to.String() != tt.to || promotion != tt.promotion {
				t.Errorf("ParseCoordinate(%q) = %s %s %v, want %s %s %v",
					tt.text, from, to, promotion, tt.from, tt.to, tt.promotion)
			}
		})
	}
}
