// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Moves to play first, space separated (e2e4, e7e8q or SAN)")

	// Move generation checks
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to depth N")
	divide     = flag.Bool("divide", false, "With -perft, show the count below each root move")

	// Search
	aiLevel     = flag.String("ai", "", "Ask the engine for a move: shallow, moderate or deep")
	searchDepth = flag.Int("depth", config.DefaultDeepDepth, "Search depth in plies of the deep tier")
	seed        = flag.Int64("seed", 1, "Random seed for the shallow tier")
	noMateScore = flag.Bool("nomatescore", false, "Score checkmate and stalemate leaves by material only")

	// Self-play
	selfPlay   = flag.Int("selfplay", 0, "Play N engine-versus-engine games from the position")
	whiteLevel = flag.String("white", "deep", "Self-play tier for White")
	blackLevel = flag.String("black", "deep", "Self-play tier for Black")
	workers    = flag.Int("workers", 1, "Number of games played in parallel")
	maxPlies   = flag.Int("maxplies", 200, "Stop a self-play game as unfinished after N plies")
	noDupCheck = flag.Bool("nodups", false, "Don't count games ending in the same position")

	// Game records
	outputFile = flag.String("o", "", "Write the game (or every self-play game) to this file as PGN")
	jsonOutput = flag.Bool("json", false, "Write game records as JSON instead of PGN")
	moveFENs   = flag.Bool("fenmoves", false, "Add the position after each move to JSON records")
	lineLength = flag.Uint("w", 80, "Maximum PGN movetext line length")

	// Diagram output
	svgFile  = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	cellSize = flag.Int("cellsize", 48, "Diagram cell size in pixels")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=running commentary")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyMatchFlags(cfg)
	applyDiagramFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Log.Verbosity = *verbosity
	if *quiet {
		cfg.Log.Verbosity = 0
	}
}

// applySearchFlags configures move selection.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.DeepDepth = *searchDepth
	cfg.Search.Seed = *seed
	cfg.Search.ScoreMates = !*noMateScore
}

// applyMatchFlags configures self-play.
func applyMatchFlags(cfg *config.Config) {
	cfg.Match.Games = *selfPlay
	cfg.Match.White = *whiteLevel
	cfg.Match.Black = *blackLevel
	cfg.Match.Workers = *workers
	cfg.Match.MaxPlies = *maxPlies
	cfg.Match.DetectDuplicates = !*noDupCheck
}

// applyDiagramFlags configures SVG output.
func applyDiagramFlags(cfg *config.Config) {
	cfg.Diagram.CellSize = *cellSize
}

// applyOutputFlags configures game records.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.MoveFENs = *moveFENs
	cfg.Output.MaxLineLength = *lineLength
}
