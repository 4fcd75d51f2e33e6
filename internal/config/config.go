// Package config provides configuration for the chess engine, its search
// and the self-play runner.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Search settings (difficulty depths, random source, mate scoring)
	Search *SearchConfig

	// Logging settings (verbosity, log stream)
	Log *LogConfig

	// Self-play match settings
	Match *MatchConfig

	// SVG diagram settings
	Diagram *DiagramConfig

	// Game record settings (PGN or JSON)
	Output *OutputConfig

	// Output stream for results
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Log:        NewLogConfig(),
		Match:      NewMatchConfig(),
		Diagram:    NewDiagramConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return errors.Wrap(err, "search")
	}
	if err := c.Match.Validate(); err != nil {
		return errors.Wrap(err, "match")
	}
	if err := c.Diagram.Validate(); err != nil {
		return errors.Wrap(err, "diagram")
	}
	if err := c.Output.Validate(); err != nil {
		return errors.Wrap(err, "output")
	}
	return nil
}

// Logf writes to the log stream when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	c.Log.Logf(level, format, args...)
}
