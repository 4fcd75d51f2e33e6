package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/diagram"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/search"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// run sets up the position and performs the requested command.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := startGame(cfg)
	if err != nil {
		return err
	}
	start := g.Board()
	if err := playMoveList(g, *movesFlag); err != nil {
		return err
	}

	out := cfg.OutputFile
	switch {
	case *perftDepth > 0:
		reportPerft(out, g.Board(), *perftDepth, *divide)
	case cfg.Match.Games > 0:
		records, err := runSelfPlay(ctx, cfg, g.FEN())
		if err != nil {
			return err
		}
		if err := writeRecords(cfg, records); err != nil {
			return err
		}
	case *aiLevel != "":
		if err := reportAIMove(ctx, out, g, *aiLevel); err != nil {
			return err
		}
	default:
		reportPosition(out, g, start)
		if err := writeRecords(cfg, []*output.Record{gameRecord(g, start)}); err != nil {
			return err
		}
	}

	if *svgFile != "" {
		return writeDiagram(cfg, g.Board(), *svgFile)
	}
	return nil
}

func startGame(cfg *config.Config) (*game.Game, error) {
	if *fenFlag == "" {
		return game.New(cfg), nil
	}
	return game.NewFromFEN(*fenFlag, cfg)
}

// playMoveList applies space-separated moves in order.
func playMoveList(g *game.Game, moves string) error {
	for _, text := range strings.Fields(moves) {
		result, err := g.ApplyText(text)
		if err != nil {
			return err
		}
		if result == game.NeedsPromotionChoice {
			return &errors.MoveError{Err: errors.ErrInvalidPromotion, Ply: g.Ply() + 1, MoveText: text}
		}
	}
	return nil
}

func reportPerft(w io.Writer, board *chess.Board, depth int, split bool) {
	if !split {
		fmt.Fprintf(w, "perft(%d) = %d\n", depth, engine.Perft(board, depth))
		return
	}
	var total uint64
	for _, entry := range engine.Divide(board, depth) {
		fmt.Fprintf(w, "%s: %d\n", entry.Move, entry.Nodes)
		total += entry.Nodes
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
}

func reportAIMove(ctx context.Context, w io.Writer, g *game.Game, level string) error {
	difficulty, err := search.ParseDifficulty(level)
	if err != nil {
		return err
	}
	m, ok := g.SelectAIMove(ctx, difficulty)
	if !ok {
		fmt.Fprintf(w, "No move: %s\n", g.StatusText())
		return nil
	}
	stats := g.SearchStats()
	fmt.Fprintf(w, "Best move: %s (%s)\n", m, engine.MoveToSAN(g.Board(), m))
	fmt.Fprintf(w, "Nodes: %d  Cutoffs: %d\n", stats.Nodes, stats.Cutoffs)
	return nil
}

func reportPosition(w io.Writer, g *game.Game, start *chess.Board) {
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintf(w, "Status: %s\n", g.StatusText())
	if history := g.History(); len(history) > 0 {
		fmt.Fprintf(w, "Moves: %s %s\n", formatMoveList(history, start.MoveNumber, start.ToMove == chess.Black), g.Result())
	}
	if notes := drawNotes(g.DrawRules()); len(notes) > 0 {
		fmt.Fprintf(w, "Draw rules: %s\n", strings.Join(notes, ", "))
	}
}

// formatMoveList numbers SAN moves starting from moveNumber.
func formatMoveList(sans []string, moveNumber uint, blackFirst bool) string {
	var sb strings.Builder
	black := blackFirst
	for i, san := range sans {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case !black:
			fmt.Fprintf(&sb, "%d. ", moveNumber)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", moveNumber)
		}
		sb.WriteString(san)
		if black {
			moveNumber++
		}
		black = !black
	}
	return sb.String()
}

func drawNotes(r engine.DrawRuleResult) []string {
	var notes []string
	if r.Has5FoldRepetition {
		notes = append(notes, "fivefold repetition")
	} else if r.Has3FoldRepetition {
		notes = append(notes, "threefold repetition")
	}
	if r.Has75MoveRule {
		notes = append(notes, "75-move rule")
	}
	if r.HasInsufficientMaterial {
		notes = append(notes, "insufficient material")
	}
	return notes
}

// runSelfPlay plays the match and returns a record of every finished game.
func runSelfPlay(ctx context.Context, cfg *config.Config, fen string) ([]*output.Record, error) {
	match, err := worker.NewMatch(cfg)
	if err != nil {
		return nil, err
	}
	results := match.Run(ctx, fen)

	w := cfg.OutputFile
	date := time.Now().Format("2006.01.02")
	var records []*output.Record
	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(w, "Game %d: error: %v\n", r.Index+1, r.Error)
			continue
		}
		fmt.Fprintf(w, "Game %d: %s (%d plies)\n", r.Index+1, r.Result, len(r.Moves))
		records = append(records, &output.Record{
			Event:    cfg.Output.Event,
			Date:     date,
			Round:    r.Index + 1,
			White:    engineName(cfg.Match.White),
			Black:    engineName(cfg.Match.Black),
			Result:   r.Result,
			StartFEN: fen,
			Moves:    r.Moves,
		})
	}

	s := worker.Summarize(results)
	fmt.Fprintf(w, "White wins: %d  Black wins: %d  Draws: %d  Unfinished: %d\n",
		s.WhiteWins, s.BlackWins, s.Draws, s.Unfinished)
	if cfg.Match.DetectDuplicates {
		fmt.Fprintf(w, "Duplicate final positions: %d\n", s.Duplicates)
	}
	if s.Errors > 0 {
		return records, fmt.Errorf("%d of %d games failed", s.Errors, len(results))
	}
	return records, nil
}

func engineName(level string) string {
	return "chess-engine (" + level + ")"
}

func gameRecord(g *game.Game, start *chess.Board) *output.Record {
	return &output.Record{
		Result:   g.Result(),
		StartFEN: engine.BoardToFEN(start),
		Moves:    g.History(),
	}
}

// writeRecords writes game records to the -o file, if one was given.
func writeRecords(cfg *config.Config, records []*output.Record) (err error) {
	if *outputFile == "" {
		return nil
	}
	file, err := os.Create(*outputFile) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return errors.Wrap(err, "creating game file")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	writer := output.NewGameWriter(file, cfg.Output)
	for _, r := range records {
		if err := writer.WriteGame(r); err != nil {
			return err
		}
	}
	return writer.Close()
}

func writeDiagram(cfg *config.Config, board *chess.Board, path string) (err error) {
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return errors.Wrap(err, "creating diagram")
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return diagram.Write(file, board, cfg.Diagram)
}
