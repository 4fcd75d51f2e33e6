package chess

import "testing"

func TestColouredPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for kind := Pawn; kind <= King; kind++ {
			p := MakeColouredPiece(colour, kind)
			if got := ExtractColour(p); got != colour {
				t.Errorf("ExtractColour(%v) = %v; want %v", p, got, colour)
			}
			if got := ExtractPiece(p); got != kind {
				t.Errorf("ExtractPiece(%v) = %v; want %v", p, got, kind)
			}
			if !IsOccupied(p) {
				t.Errorf("IsOccupied(%v) = false; want true", p)
			}
		}
	}
	if IsOccupied(Empty) || IsOccupied(Off) {
		t.Error("IsOccupied reports Empty or Off as a piece")
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		want    Cell
		wantErr bool
	}{
		{"a8", Cell{0, 0}, false},
		{"h1", Cell{7, 7}, false},
		{"e4", Cell{4, 4}, false},
		{"d6", Cell{2, 3}, false},
		{"i1", Cell{}, true},
		{"a9", Cell{}, true},
		{"e", Cell{}, true},
		{"e44", Cell{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCell(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCell(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseCell(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if err == nil && got.String() != tt.in {
				t.Errorf("ParseCell(%q).String() = %q", tt.in, got.String())
			}
		})
	}
}

func TestCellColours(t *testing.T) {
	if MustCell("a1").IsLight() {
		t.Error("a1 reported light")
	}
	if !MustCell("h1").IsLight() {
		t.Error("h1 reported dark")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: MustCell("e2"), To: MustCell("e4"), Tag: DoublePawnPush}, "e2e4"},
		{Move{From: MustCell("e7"), To: MustCell("e8"), Tag: Promotion, Promotion: Queen}, "e7e8q"},
		{Move{From: MustCell("b2"), To: MustCell("a1"), Tag: Promotion, Promotion: Knight}, "b2a1n"},
		{Move{From: MustCell("e1"), To: MustCell("g1"), Tag: CastleKingside}, "e1g1"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("Move.String() = %q; want %q", got, tt.want)
		}
	}
}

func TestGameStatus(t *testing.T) {
	for _, s := range []GameStatus{InProgress, Check} {
		if s.IsTerminal() {
			t.Errorf("%v.IsTerminal() = true", s)
		}
	}
	for _, s := range []GameStatus{Checkmate, Stalemate} {
		if !s.IsTerminal() {
			t.Errorf("%v.IsTerminal() = false", s)
		}
	}
}
