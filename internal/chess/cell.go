package chess

import "fmt"

// Cell addresses one square of the 8x8 grid. Row 0 is rank 8 (the top of
// the board from White's side) and Row 7 is rank 1; Col 0 is the a-file.
type Cell struct {
	Row int
	Col int
}

// CellAt returns the cell for a file letter and rank digit.
func CellAt(col Col, rank Rank) Cell {
	return Cell{Row: int(LastRank - rank), Col: int(col - FirstCol)}
}

// ParseCell parses algebraic square text such as "e4".
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return Cell{}, fmt.Errorf("square %q: want two characters", s)
	}
	col, rank := Col(s[0]), Rank(s[1])
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return Cell{}, fmt.Errorf("square %q: out of range", s)
	}
	return CellAt(col, rank), nil
}

// MustCell is ParseCell for literals known to be valid; it panics otherwise.
func MustCell(s string) Cell {
	c, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Offset returns the cell dr rows and dc columns away.
func (c Cell) Offset(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// File returns the file letter of the cell.
func (c Cell) File() Col {
	return Col(FirstCol + c.Col)
}

// Rank returns the rank digit of the cell.
func (c Cell) Rank() Rank {
	return Rank(LastRank - c.Row)
}

// String returns the algebraic name of the cell, e.g. "e4".
func (c Cell) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte(c.File()), byte(c.Rank())})
}

// IsLight reports whether the cell is a light square.
func (c Cell) IsLight() bool {
	return (c.Row+c.Col)%2 == 0
}
