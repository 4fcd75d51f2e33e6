package chess

import "slices"

// CastleRights holds the four independent castling permissions.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastleRights returns rights with every permission set.
func AllCastleRights() CastleRights {
	return CastleRights{true, true, true, true}
}

// Kingside reports the kingside right of a colour.
func (r CastleRights) Kingside(c Colour) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queenside right of a colour.
func (r CastleRights) Queenside(c Colour) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// Clear removes both rights of a colour.
func (r *CastleRights) Clear(c Colour) {
	if c == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
}

// String returns the rights in FEN form ("KQkq", "-").
func (r CastleRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// Index packs the rights into 0-15 for hashing.
func (r CastleRights) Index() int {
	i := 0
	if r.WhiteKingside {
		i |= 1
	}
	if r.WhiteQueenside {
		i |= 2
	}
	if r.BlackKingside {
		i |= 4
	}
	if r.BlackQueenside {
		i |= 8
	}
	return i
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// Squares[row][col]; row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	Castle CastleRights

	// Is an en passant capture possible? If so EnPassant is the square
	// the capturing pawn lands on.
	HasEnPassant bool
	EnPassant    Cell

	// Keep track of where the two kings are for check detection. These
	// must always match the grid.
	WhiteKing Cell
	BlackKing Cell

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint

	// Applied moves, oldest first.
	History []UndoRecord
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	b.clear()
	return b
}

func (b *Board) clear() {
	for row := range b.Squares {
		for col := range b.Squares[row] {
			b.Squares[row][col] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}

	b.WhiteKing = Cell{Row: 7, Col: 4}
	b.BlackKing = Cell{Row: 0, Col: 4}
	b.Castle = AllCastleRights()
	b.ToMove = White
	b.MoveNumber = 1
	b.HasEnPassant = false
	b.EnPassant = Cell{}
	b.HalfmoveClock = 0
	b.History = nil
}

// Get returns the piece on a cell, or Off for cells outside the board.
func (b *Board) Get(c Cell) Piece {
	if !c.Valid() {
		return Off
	}
	return b.Squares[c.Row][c.Col]
}

// Set places a piece on a cell. Cells outside the board are ignored.
// Set does not maintain the king cells; callers placing kings use PlaceKing.
func (b *Board) Set(c Cell, piece Piece) {
	if c.Valid() {
		b.Squares[c.Row][c.Col] = piece
	}
}

// PlaceKing puts a king on a cell and updates the cached king cell.
func (b *Board) PlaceKing(colour Colour, c Cell) {
	b.Set(c, MakeColouredPiece(colour, King))
	b.SetKingCell(colour, c)
}

// KingCell returns the cached king cell of a colour.
func (b *Board) KingCell(colour Colour) Cell {
	if colour == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

// SetKingCell updates the cached king cell of a colour.
func (b *Board) SetKingCell(colour Colour, c Cell) {
	if colour == White {
		b.WhiteKing = c
	} else {
		b.BlackKing = c
	}
}

// Ply returns the number of moves applied to this board.
func (b *Board) Ply() int {
	return len(b.History)
}

// LastMove returns the most recent undo record, if any.
func (b *Board) LastMove() (UndoRecord, bool) {
	if len(b.History) == 0 {
		return UndoRecord{}, false
	}
	return b.History[len(b.History)-1], true
}

// Copy creates a deep copy of the board. The history is cloned so that the
// copy and the original never share a backing array.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.History = slices.Clone(b.History)
	return newBoard
}

// Equal reports whether two boards describe the same position: pieces,
// side to move, castling rights, en passant target and king cells.
// History and clocks are not compared.
func (b *Board) Equal(o *Board) bool {
	if b.HasEnPassant != o.HasEnPassant || (b.HasEnPassant && b.EnPassant != o.EnPassant) {
		return false
	}
	return b.Squares == o.Squares &&
		b.ToMove == o.ToMove &&
		b.Castle == o.Castle &&
		b.WhiteKing == o.WhiteKing &&
		b.BlackKing == o.BlackKing
}
