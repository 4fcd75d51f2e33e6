package search

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Difficulty is a named search tier.
type Difficulty int

const (
	// Shallow picks a uniformly random legal move.
	Shallow Difficulty = iota
	// Moderate picks the move with the best static evaluation one ply ahead.
	Moderate
	// Deep runs minimax with alpha-beta to the configured depth.
	Deep
)

// String returns the tier name.
func (d Difficulty) String() string {
	switch d {
	case Shallow:
		return "shallow"
	case Moderate:
		return "moderate"
	case Deep:
		return "deep"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a tier name to a Difficulty. The names easy, medium
// and hard are accepted as aliases.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shallow", "easy":
		return Shallow, nil
	case "moderate", "medium":
		return Moderate, nil
	case "deep", "hard":
		return Deep, nil
	}
	return Shallow, fmt.Errorf("unknown difficulty %q: %w", name, errors.ErrInvalidConfig)
}
