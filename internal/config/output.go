package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// OutputConfig holds settings for game records written by self-play.
type OutputConfig struct {
	// JSONFormat writes records as JSON instead of PGN
	JSONFormat bool

	// MaxLineLength is the maximum movetext line length for PGN output
	MaxLineLength uint

	// MoveFENs adds the position after every move to JSON records
	MoveFENs bool

	// Event is written to the Event tag of every record
	Event string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		Event:         "Engine self-play",
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is less than 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
