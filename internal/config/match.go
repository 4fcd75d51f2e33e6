package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MatchConfig holds settings for self-play matches.
type MatchConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of games played concurrently
	Workers int

	// MaxPlies ends a game as unfinished after this many plies
	MaxPlies int

	// White and Black name the difficulty tier of each side
	White string
	Black string

	// DetectDuplicates counts games that reach an identical final position
	DetectDuplicates bool

	// DuplicateCapacity bounds the duplicate table (0 = unbounded)
	DuplicateCapacity int
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Games:            1,
		Workers:          1,
		MaxPlies:         200,
		White:            "deep",
		Black:            "deep",
		DetectDuplicates: true,
	}
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	switch {
	case m.Games < 0:
		return fmt.Errorf("games %d is negative: %w", m.Games, errors.ErrInvalidConfig)
	case m.Workers < 1:
		return fmt.Errorf("workers %d is less than 1: %w", m.Workers, errors.ErrInvalidConfig)
	case m.MaxPlies < 1:
		return fmt.Errorf("max plies %d is less than 1: %w", m.MaxPlies, errors.ErrInvalidConfig)
	case m.DuplicateCapacity < 0:
		return fmt.Errorf("duplicate capacity %d is negative: %w", m.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
