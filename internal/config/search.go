package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Search depth limits.
const (
	DefaultDeepDepth = 3
	MaxSearchDepth   = 8
)

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// DeepDepth is the alpha-beta depth, in plies, of the deep tier
	DeepDepth int

	// Seed feeds the random source of the shallow tier
	Seed int64

	// ScoreMates scores checkmate and stalemate leaves instead of
	// falling back to material
	ScoreMates bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		DeepDepth:  DefaultDeepDepth,
		Seed:       1,
		ScoreMates: true,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.DeepDepth < 1 || s.DeepDepth > MaxSearchDepth {
		return fmt.Errorf("deep depth %d outside 1..%d: %w",
			s.DeepDepth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	return nil
}
