package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDeepDepth sets the alpha-beta depth of the deep tier.
func (b *ConfigBuilder) WithDeepDepth(depth int) *ConfigBuilder {
	b.cfg.Search.DeepDepth = depth
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithScoreMates controls mate-aware scoring.
func (b *ConfigBuilder) WithScoreMates(enabled bool) *ConfigBuilder {
	b.cfg.Search.ScoreMates = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Log.Verbosity = level
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.Log.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithWorkers sets the number of concurrent self-play games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Match.Workers = n
	return b
}

// WithGames sets the number of self-play games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Match.Games = n
	return b
}

// WithMaxPlies sets the ply limit of a self-play game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = n
	return b
}

// WithLevels sets the difficulty tier names of both sides.
func (b *ConfigBuilder) WithLevels(white, black string) *ConfigBuilder {
	b.cfg.Match.White = white
	b.cfg.Match.Black = black
	return b
}

// WithCellSize sets the diagram cell size.
func (b *ConfigBuilder) WithCellSize(size int) *ConfigBuilder {
	b.cfg.Diagram.CellSize = size
	return b
}

// WithJSON selects JSON game records instead of PGN.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the PGN movetext line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}
