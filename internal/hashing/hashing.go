// Package hashing provides position hashing, repetition counting and
// duplicate detection for finished games.
package hashing

import "github.com/lgbarn/chess-engine-go/internal/chess"

// DuplicateDetector tracks finished games so that repeated self-play games
// can be reported once.
type DuplicateDetector struct {
	// hashTable maps final-position hashes to the games that ended there
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	uniqueCount    int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
	// MoveHash hashes the sequence of moves played
	MoveHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of the game that led to board.
func Signature(board *chess.Board) GameSignature {
	return GameSignature{
		Hash:      GenerateZobristHash(board),
		MoveCount: board.Ply(),
		WeakHash:  WeakHash(board),
		MoveHash:  hashMoveSequence(board.History),
	}
}

// CheckAndAdd checks if the game that led to board is a duplicate and adds
// it to the hash table. Returns true if the game is a duplicate. Once the
// detector is full, new games are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := Signature(board)

	// Check for duplicates
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	d.uniqueCount++
	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	}
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.MoveCount == b.MoveCount && a.MoveHash == b.MoveHash
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	if d.maxCapacity <= 0 {
		return false
	}
	stored := 0
	for _, sigs := range d.hashTable {
		stored += len(sigs)
	}
	return stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

// hashMoveSequence creates a hash from the coordinate text of each move.
func hashMoveSequence(history []chess.UndoRecord) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, rec := range history {
		for _, c := range rec.Move.String() {
			hash = hash*multiplier + uint64(c)
		}
	}

	return hash
}
