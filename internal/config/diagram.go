package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// DiagramConfig holds settings for SVG board diagrams.
type DiagramConfig struct {
	CellSize    int    // Side of one cell in pixels
	LightColour string // CSS colour of light cells
	DarkColour  string // CSS colour of dark cells
	Coordinates bool   // Draw file and rank labels
	Highlight   bool   // Mark the cells of the last move
}

// NewDiagramConfig creates a DiagramConfig with default values.
func NewDiagramConfig() *DiagramConfig {
	return &DiagramConfig{
		CellSize:    48,
		LightColour: "#f0d9b5",
		DarkColour:  "#b58863",
		Coordinates: true,
		Highlight:   true,
	}
}

// Validate checks that the diagram configuration is valid.
func (d *DiagramConfig) Validate() error {
	if d.CellSize < 8 {
		return fmt.Errorf("cell size %d is less than 8: %w", d.CellSize, errors.ErrInvalidConfig)
	}
	return nil
}
