package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Match plays computer-versus-computer games between two difficulty tiers.
// Each game owns its own board and searcher, so games run in parallel
// without sharing state beyond the duplicate table.
type Match struct {
	cfg   *config.Config
	white search.Difficulty
	black search.Difficulty
	dups  *hashing.ThreadSafeDuplicateDetector // nil when detection is off
}

// NewMatch validates cfg and resolves the tier names of both sides.
func NewMatch(cfg *config.Config) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	white, err := search.ParseDifficulty(cfg.Match.White)
	if err != nil {
		return nil, err
	}
	black, err := search.ParseDifficulty(cfg.Match.Black)
	if err != nil {
		return nil, err
	}

	m := &Match{cfg: cfg, white: white, black: black}
	if cfg.Match.DetectDuplicates {
		m.dups = hashing.NewThreadSafeDuplicateDetector(false, cfg.Match.DuplicateCapacity)
	}
	return m, nil
}

// PlayGame plays one game until it ends, reaches the ply limit, or ctx is
// cancelled. A cancelled game is unfinished, not failed, and a move whose
// search was cut short is not played.
func (m *Match) PlayGame(ctx context.Context, item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index}

	g, err := game.NewFromFEN(startFEN(item), m.gameConfig(item.Seed))
	if err != nil {
		result.Error = err
		return result
	}

	for g.Ply() < m.cfg.Match.MaxPlies && !g.IsOver() && ctx.Err() == nil {
		difficulty := m.black
		if g.Turn() == chess.White {
			difficulty = m.white
		}
		if _, err := g.PlayAIMove(ctx, difficulty); err != nil {
			if ctx.Err() == nil {
				result.Error = err
			}
			break
		}
		result.Nodes += g.SearchStats().Nodes
	}

	result.Board = g.Board()
	result.Status = g.Status()
	result.Result = g.Result()
	result.Moves = g.History()
	if m.dups != nil {
		result.Duplicate = m.dups.CheckAndAdd(result.Board)
	}
	m.cfg.Logf(1, "game %d: %s in %d plies", item.Index+1, result.Result, len(result.Moves))
	return result
}

// gameConfig returns a copy of the match config with its own search seed.
func (m *Match) gameConfig(seed int64) *config.Config {
	cfg := *m.cfg
	searchCfg := *m.cfg.Search
	searchCfg.Seed = seed
	cfg.Search = &searchCfg
	return &cfg
}

func startFEN(item WorkItem) string {
	if item.StartFEN == "" {
		return engine.InitialFEN
	}
	return item.StartFEN
}

// Run plays cfg.Match.Games games from startFEN (empty for the initial
// position) on a pool of cfg.Match.Workers workers. Results are ordered by
// game index. Games not started before ctx is cancelled are skipped.
func (m *Match) Run(ctx context.Context, fen string) []ProcessResult {
	pool := NewPool(func(item WorkItem) ProcessResult {
		return m.PlayGame(ctx, item)
	}, WithWorkers(m.cfg.Match.Workers), WithBufferSize(m.cfg.Match.Workers*2))
	pool.Start()

	go func() {
		defer pool.Close()
		for i := 0; i < m.cfg.Match.Games; i++ {
			item := WorkItem{Index: i, StartFEN: fen, Seed: m.cfg.Search.Seed + int64(i)}
			if ctx.Err() != nil || !pool.Submit(ctx, item) {
				pool.Stop()
				return
			}
		}
	}()

	var results []ProcessResult
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

// Duplicates returns how many games ended in a position already reached by
// an earlier game, or 0 when detection is off.
func (m *Match) Duplicates() int {
	if m.dups == nil {
		return 0
	}
	return m.dups.DuplicateCount()
}

// Summary tallies match results.
type Summary struct {
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
	Errors     int
	Duplicates int
}

// Summarize tallies results.
func Summarize(results []ProcessResult) Summary {
	var s Summary
	for _, r := range results {
		if r.Error != nil {
			s.Errors++
			continue
		}
		switch r.Result {
		case "1-0":
			s.WhiteWins++
		case "0-1":
			s.BlackWins++
		case "1/2-1/2":
			s.Draws++
		default:
			s.Unfinished++
		}
		if r.Duplicate {
			s.Duplicates++
		}
	}
	return s
}
