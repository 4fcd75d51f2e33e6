// Package engine implements the rules of chess on a chess.Board: attack
// detection, move generation, move application with exact undo, game
// status, FEN and move notation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is required; missing trailing fields take their initial-position
// defaults. Each side must have exactly one king.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "piece placement"}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, fen, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, fen, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fen, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fen, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: fen,
			Expected: "8 ranks", Got: strconv.Itoa(len(ranks)),
		}
	}

	kings := [2]int{}
	for row, rankText := range ranks {
		col := 0
		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty {
					return &errors.ParseError{
						Err: errors.ErrInvalidFEN, Input: fen,
						Expected: "piece letter", Got: strconv.QuoteRune(c),
					}
				}
				if col >= chess.BoardSize {
					return &errors.ParseError{
						Err: errors.ErrInvalidFEN, Input: fen,
						Expected: "8 squares in rank " + string(rune('8'-row)), Got: "more",
					}
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				cell := chess.Cell{Row: row, Col: col}
				board.Set(cell, chess.MakeColouredPiece(colour, piece))
				if piece == chess.King {
					board.SetKingCell(colour, cell)
					kings[colour]++
				}
				col++
			}
		}
		if col != chess.BoardSize {
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen,
				Expected: "8 squares in rank " + string(rune('8'-row)), Got: strconv.Itoa(col),
			}
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: fen,
			Expected: "one king per side",
			Got:      fmt.Sprintf("%d white, %d black", kings[chess.White], kings[chess.Black]),
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen string, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "w or b", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A missing
// field leaves every right cleared.
func parseCastlingRights(board *chess.Board, fen string, parts []string) error {
	board.Castle = chess.CastleRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castle.WhiteKingside = true
		case 'Q':
			board.Castle.WhiteQueenside = true
		case 'k':
			board.Castle.BlackKingside = true
		case 'q':
			board.Castle.BlackQueenside = true
		default:
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen,
				Expected: "castling rights KQkq", Got: strconv.QuoteRune(c),
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, fen string, parts []string) error {
	board.HasEnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	cell, err := chess.ParseCell(parts[3])
	if err != nil || (cell.Rank() != '3' && cell.Rank() != '6') {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "en passant square", Got: parts[3]}
	}
	board.HasEnPassant = true
	board.EnPassant = cell
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fen string, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "halfmove clock", Got: parts[4]}
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "move number", Got: parts[5]}
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castle.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Cell{Row: row, Col: col})
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.HasEnPassant {
		sb.WriteString(board.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
