// Package diagram renders boards as SVG images.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const (
	highlightStyle = "fill:#f6f669;fill-opacity:0.5"
	checkStyle     = "fill:none;stroke:#d00;stroke-width:3"
)

// glyphs indexed by colour then piece kind.
var glyphs = [2][chess.NumPieceValues]string{
	chess.Black: {chess.Pawn: "♟", chess.Knight: "♞", chess.Bishop: "♝", chess.Rook: "♜", chess.Queen: "♛", chess.King: "♚"},
	chess.White: {chess.Pawn: "♙", chess.Knight: "♘", chess.Bishop: "♗", chess.Rook: "♖", chess.Queen: "♕", chess.King: "♔"},
}

// Glyph returns the Unicode chess symbol of a coloured piece, or "" for an
// empty cell.
func Glyph(piece chess.Piece) string {
	if !chess.IsOccupied(piece) {
		return ""
	}
	return glyphs[chess.ExtractColour(piece)][chess.ExtractPiece(piece)]
}

// Write renders board from White's side. The cells of the last move are
// highlighted and a king in check is ringed, as cfg allows.
func Write(w io.Writer, board *chess.Board, cfg *config.DiagramConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	cell := cfg.CellSize
	margin := 0
	if cfg.Coordinates {
		margin = cell / 2
	}
	size := chess.BoardSize*cell + 2*margin

	canvas.Start(size, size)
	canvas.Title(engine.BoardToFEN(board))

	origin := func(c chess.Cell) (int, int) {
		return margin + c.Col*cell, margin + c.Row*cell
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			c := chess.Cell{Row: row, Col: col}
			x, y := origin(c)
			fill := cfg.DarkColour
			if c.IsLight() {
				fill = cfg.LightColour
			}
			canvas.Rect(x, y, cell, cell, "fill:"+fill)
		}
	}

	if last, ok := board.LastMove(); ok && cfg.Highlight {
		for _, c := range []chess.Cell{last.Move.From, last.Move.To} {
			x, y := origin(c)
			canvas.Rect(x, y, cell, cell, highlightStyle)
		}
	}

	if engine.IsInCheck(board, board.ToMove) {
		x, y := origin(board.KingCell(board.ToMove))
		canvas.Circle(x+cell/2, y+cell/2, cell/2-2, checkStyle)
	}

	pieceStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", cell*4/5)
	canvas.Gstyle(pieceStyle)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			c := chess.Cell{Row: row, Col: col}
			if glyph := Glyph(board.Get(c)); glyph != "" {
				x, y := origin(c)
				canvas.Text(x+cell/2, y+cell/2, glyph)
			}
		}
	}
	canvas.Gend()

	if cfg.Coordinates {
		writeCoordinates(canvas, cell, margin)
	}

	canvas.End()
	return ew.err
}

// writeCoordinates labels files below the board and ranks to its left.
func writeCoordinates(canvas *svg.SVG, cell, margin int) {
	canvas.Gstyle(fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx;fill:#444", margin*3/5))
	bottom := margin + chess.BoardSize*cell + margin/2
	for i := 0; i < chess.BoardSize; i++ {
		c := chess.Cell{Row: i, Col: i}
		canvas.Text(margin+i*cell+cell/2, bottom, string(rune(c.File())))
		canvas.Text(margin/2, margin+i*cell+cell/2, string(rune(c.Rank())))
	}
	canvas.Gend()
}

// errWriter keeps the first write error; svgo does not report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
