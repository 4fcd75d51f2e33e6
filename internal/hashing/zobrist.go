package hashing

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Zobrist keys for position hashing, generated from a fixed seed so hashes
// are stable between runs.
var (
	zobristPiece      [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // One per file
	zobristCastling   [16]uint64              // All castling combinations
	zobristSideToMove uint64                  // XOR when Black is to move
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator used only for key generation.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := range zobristPiece {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := range zobristPiece[c][kind] {
				zobristPiece[c][kind][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// GenerateZobristHash hashes the position of a board: piece placement, side
// to move, castling rights and en passant file. Clocks and history are not
// part of the hash, so positions repeated by different move orders collide
// as intended.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !chess.IsOccupied(piece) {
				continue
			}
			hash ^= zobristPiece[chess.ExtractColour(piece)][chess.ExtractPiece(piece)][row*chess.BoardSize+col]
		}
	}
	hash ^= zobristCastling[board.Castle.Index()]
	if board.HasEnPassant {
		hash ^= zobristEnPassant[board.EnPassant.Col]
	}
	if board.ToMove == chess.Black {
		hash ^= zobristSideToMove
	}
	return hash
}

// WeakHash is a cheap secondary hash over the piece placement only, used to
// confirm Zobrist matches.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if chess.IsOccupied(piece) {
				hash += uint64(piece) * uint64(row*chess.BoardSize+col+1)
			}
		}
	}
	return hash
}
