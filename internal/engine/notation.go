package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MoveToSAN renders a legal move in standard algebraic notation, e.g.
// "Nbd7", "exd6", "e8=Q+", "O-O#". board is the position before the move;
// it is left unchanged.
func MoveToSAN(board *chess.Board, move chess.Move) string {
	var sb strings.Builder

	switch move.Tag {
	case chess.CastleKingside:
		sb.WriteString("O-O")
	case chess.CastleQueenside:
		sb.WriteString("O-O-O")
	default:
		writeSANBody(&sb, board, move)
	}

	Apply(board, move)
	switch Status(board) {
	case chess.Checkmate:
		sb.WriteByte('#')
	case chess.Check:
		sb.WriteByte('+')
	}
	Undo(board)

	return sb.String()
}

// writeSANBody writes everything but the check suffix of a non-castling move.
func writeSANBody(sb *strings.Builder, board *chess.Board, move chess.Move) {
	piece := board.Get(move.From)
	kind := chess.ExtractPiece(piece)
	capture := move.Tag == chess.EnPassant || chess.IsOccupied(board.Get(move.To))

	if kind == chess.Pawn {
		if capture {
			sb.WriteByte(byte(move.From.File()))
		}
	} else {
		sb.WriteByte(kind.Letter())
		sb.WriteString(disambiguation(board, move, piece))
	}

	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())

	if move.Tag == chess.Promotion {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}
}

// disambiguation returns the file, rank or square needed to tell move apart
// from moves of other identical pieces to the same cell.
func disambiguation(board *chess.Board, move chess.Move, piece chess.Piece) string {
	var rivals []chess.Cell
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Cell{Row: row, Col: col}
			if from == move.From || board.Get(from) != piece {
				continue
			}
			for _, m := range LegalMoves(board, from) {
				if m.To == move.To {
					rivals = append(rivals, from)
					break
				}
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, c := range rivals {
		if c.Col == move.From.Col {
			sameFile = true
		}
		if c.Row == move.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(byte(move.From.File()))
	case !sameRank:
		return string(byte(move.From.Rank()))
	default:
		return move.From.String()
	}
}

// ParseCoordinate parses coordinate move text such as "e2e4" or "e7e8q".
// promotion is Empty when no promotion letter is given.
func ParseCoordinate(text string) (from, to chess.Cell, promotion chess.Piece, err error) {
	promotion = chess.Empty
	if len(text) != 4 && len(text) != 5 {
		return from, to, promotion, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: text, Expected: "coordinate move like e2e4",
		}
	}
	if from, err = chess.ParseCell(text[0:2]); err != nil {
		return from, to, promotion, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: text, Column: 1, Expected: "from square", Got: text[0:2],
		}
	}
	if to, err = chess.ParseCell(text[2:4]); err != nil {
		return from, to, promotion, &errors.ParseError{
			Err: errors.ErrParseFailure, Input: text, Column: 3, Expected: "to square", Got: text[2:4],
		}
	}
	if len(text) == 5 {
		promotion = chess.PieceFromLetter(text[4])
		if !chess.IsPromotionPiece(promotion) {
			return from, to, promotion, &errors.ParseError{
				Err: errors.ErrInvalidPromotion, Input: text, Column: 5, Expected: "q, r, b or n", Got: text[4:],
			}
		}
	}
	return from, to, promotion, nil
}

// ParseMove resolves move text against the legal moves of the side to move.
// It accepts coordinate notation ("e2e4", "e7e8q") and SAN ("Nf3", "O-O",
// "exd6", "e8=Q+"). A promotion without a piece letter, in either notation
// ("e7e8", "e8", "dxe8"), is rejected with ErrInvalidPromotion.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "move text"}
	}
	legal := AllLegalMoves(board)

	if from, to, promotion, err := ParseCoordinate(text); err == nil {
		for _, m := range legal {
			if m.From != from || m.To != to {
				continue
			}
			if m.Tag != chess.Promotion {
				if promotion != chess.Empty {
					break
				}
				return m, nil
			}
			if promotion == chess.Empty {
				return chess.Move{}, &errors.ParseError{
					Err: errors.ErrInvalidPromotion, Input: text, Expected: "promotion piece",
				}
			}
			if m.Promotion == promotion {
				return m, nil
			}
		}
		return chess.Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Input: text}
	}

	want := normaliseSAN(text)
	missingPiece := false
	for _, m := range legal {
		san := normaliseSAN(MoveToSAN(board, m))
		if san == want {
			return m, nil
		}
		if m.Tag == chess.Promotion && stripPromotion(san) == want {
			missingPiece = true
		}
	}
	if missingPiece {
		return chess.Move{}, &errors.ParseError{
			Err: errors.ErrInvalidPromotion, Input: text, Expected: "promotion piece",
		}
	}
	return chess.Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Input: text}
}

// stripPromotion removes the "=Q" suffix of a promotion in SAN.
func stripPromotion(san string) string {
	if i := strings.IndexByte(san, '='); i >= 0 {
		return san[:i]
	}
	return san
}

// normaliseSAN strips annotation and check marks and accepts zeros for
// castling.
func normaliseSAN(san string) string {
	san = strings.TrimRight(san, "+#!?")
	return strings.ReplaceAll(san, "0", "O")
}
