// chess-engine plays, checks and analyses chess positions from the command
// line: perft counts, engine moves, self-play matches and SVG diagrams.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Log.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays and analyses chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDifficulty tiers (-ai, -white, -black):\n")
	fmt.Fprintf(os.Stderr, "  shallow   Random legal move (alias: easy)\n")
	fmt.Fprintf(os.Stderr, "  moderate  Best material after one ply (alias: medium)\n")
	fmt.Fprintf(os.Stderr, "  deep      Minimax with alpha-beta to -depth plies (alias: hard)\n")
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -perft 3\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -moves \"e4 e5 Nf3\" -ai deep -depth 4\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -selfplay 10 -workers 4 -white moderate -black deep\n")
}
