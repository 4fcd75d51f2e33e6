package hashing

import "github.com/lgbarn/chess-engine-go/internal/chess"

// PositionCounter counts how often each position has occurred.
type PositionCounter struct {
	counts map[uint64]int
	max    int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of the board's position and returns how many
// times it has now been seen.
func (p *PositionCounter) Add(board *chess.Board) int {
	hash := GenerateZobristHash(board)
	p.counts[hash]++
	n := p.counts[hash]
	if n > p.max {
		p.max = n
	}
	return n
}

// Count returns how many times the board's position has been recorded.
func (p *PositionCounter) Count(board *chess.Board) int {
	return p.counts[GenerateZobristHash(board)]
}

// MaxRepetitions returns the highest count of any recorded position.
func (p *PositionCounter) MaxRepetitions() int {
	return p.max
}
