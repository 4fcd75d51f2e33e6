package output

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	FinalFEN   string            `json:"finalFEN"`
	InitialFEN string            `json:"initialFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber uint   `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON replays a record and converts it to JSON form. With moveFENs
// set, every move carries the position reached after it.
func GameToJSON(r *Record, moveFENs bool) (*JSONGame, error) {
	board, err := r.startBoard()
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		Tags:     make(map[string]string),
		Moves:    make([]JSONMove, 0, len(r.Moves)),
		Result:   r.result(),
		PlyCount: len(r.Moves),
	}
	for _, tag := range r.Tags() {
		jg.Tags[tag.Name] = tag.Value
	}
	if r.hasCustomStart() {
		jg.InitialFEN = r.StartFEN
	}

	for _, san := range r.Moves {
		m, err := engine.ParseMove(board, san)
		if err != nil {
			return nil, errors.Wrapf(err, "replaying %s at ply %d", san, board.Ply()+1)
		}
		jg.Moves = append(jg.Moves, convertMove(board, m, san, moveFENs))
	}
	jg.FinalFEN = engine.BoardToFEN(board)

	return jg, nil
}

// convertMove applies m to board and describes it.
func convertMove(board *chess.Board, m chess.Move, san string, withFEN bool) JSONMove {
	jm := JSONMove{
		MoveNumber: board.MoveNumber,
		Color:      colorName(board.ToMove),
		SAN:        san,
		UCI:        m.String(),
		From:       m.From.String(),
		To:         m.To.String(),
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion)
	}

	engine.Apply(board, m)
	if rec, ok := board.LastMove(); ok {
		jm.Piece = pieceTypeName(chess.ExtractPiece(rec.Moved))
		if rec.IsCapture() {
			jm.Captured = pieceTypeName(chess.ExtractPiece(rec.Captured))
		}
	}
	if withFEN {
		jm.FEN = engine.BoardToFEN(board)
	}
	return jm
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(kind chess.Piece) string {
	return strings.ToLower(kind.String())
}
