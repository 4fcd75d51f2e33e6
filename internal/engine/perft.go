package engine

import (
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is restored before returning.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		Apply(board, m)
		nodes += Perft(board, depth-1)
		Undo(board)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Divide runs perft below each root move, sorted by move text.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	var entries []DivideEntry
	for _, m := range AllLegalMoves(board) {
		Apply(board, m)
		entries = append(entries, DivideEntry{Move: m.String(), Nodes: Perft(board, depth-1)})
		Undo(board)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
	return entries
}
