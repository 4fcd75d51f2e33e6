package chess

// MoveTag marks the moves that need more than a plain relocation.
type MoveTag int

const (
	Normal MoveTag = iota
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
)

// String returns the string representation of a move tag.
func (t MoveTag) String() string {
	switch t {
	case DoublePawnPush:
		return "double pawn push"
	case EnPassant:
		return "en passant"
	case CastleKingside:
		return "castle kingside"
	case CastleQueenside:
		return "castle queenside"
	case Promotion:
		return "promotion"
	default:
		return "normal"
	}
}

// Move is a single move as produced by the move generator.
type Move struct {
	From Cell
	To   Cell
	Tag  MoveTag

	// The piece kind promoted to; Empty unless Tag is Promotion.
	Promotion Piece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Tag == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Tag {
	case CastleKingside, CastleQueenside:
		return true
	default:
		return false
	}
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Tag == Promotion {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// UndoRecord holds everything needed to invert one applied move exactly.
type UndoRecord struct {
	Move Move

	// The piece that moved, as it stood on the from-cell.
	Moved Piece

	// The piece removed from the board (Empty if none) and where it stood,
	// which differs from Move.To for en passant.
	Captured   Piece
	CapturedAt Cell

	PrevCastle       CastleRights
	PrevEnPassant    Cell
	PrevHasEnPassant bool
	PrevHalfmove     uint
	PrevMoveNumber   uint
}

// IsCapture returns true if the recorded move removed a piece.
func (u UndoRecord) IsCapture() bool {
	return u.Captured != Empty
}
