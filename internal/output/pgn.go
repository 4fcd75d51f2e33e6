package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are skipped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// WritePGN writes a record as a PGN game: tags, a blank line, wrapped
// movetext ending in the result, and a trailing blank line.
func WritePGN(w io.Writer, r *Record, maxLineLength int) error {
	board, err := r.startBoard()
	if err != nil {
		return err
	}

	ow := NewOutputWriter(w, maxLineLength)
	for _, tag := range r.Tags() {
		ow.emit(fmt.Sprintf("[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value)))
	}
	ow.NewLine()

	moveNum := board.MoveNumber
	isWhite := board.ToMove == chess.White
	for i, san := range r.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(san)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.Write(r.result())
	ow.NewLine()
	ow.NewLine()

	return ow.Err()
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
