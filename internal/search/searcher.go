package search

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MateScore is the magnitude of a checkmate found at the root. Mates further
// from the root score one less per ply so the nearest mate is preferred.
const MateScore = 100000

const infinity = MateScore + 1

// Stats counts the work done by the last SelectMove call.
type Stats struct {
	Nodes   uint64
	Cutoffs uint64
}

// Searcher selects moves. A Searcher is not safe for concurrent use; give
// each goroutine its own.
type Searcher struct {
	cfg   *config.SearchConfig
	log   *config.LogConfig
	rng   *rand.Rand
	stats Stats

	// One move buffer per ply, reused across nodes.
	buffers [][]chess.Move
}

// NewSearcher creates a Searcher from the search and log settings of cfg.
// The random source is seeded from cfg.Search.Seed.
func NewSearcher(cfg *config.Config) *Searcher {
	return &Searcher{
		cfg: cfg.Search,
		log: cfg.Log,
		rng: rand.New(rand.NewSource(cfg.Search.Seed)),
	}
}

// SetRand replaces the random source used by the shallow tier.
func (s *Searcher) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// SelectMove returns a move for the side to move, or false when it has no
// legal move. The caller's board is never modified: the search works on a
// private copy using apply and undo.
//
// If ctx is cancelled the best fully searched root move is returned (the
// first legal move when none finished).
func (s *Searcher) SelectMove(ctx context.Context, board *chess.Board, difficulty Difficulty) (chess.Move, bool) {
	s.stats = Stats{}
	work := board.Copy()
	moves := engine.AllLegalMoves(work)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	var best chess.Move
	switch difficulty {
	case Shallow:
		best = moves[s.rng.Intn(len(moves))]
	case Moderate:
		best = s.bestRootMove(ctx, work, moves, 1)
	default:
		best = s.bestRootMove(ctx, work, moves, s.cfg.DeepDepth)
	}

	s.log.Logf(2, "search %s: %s nodes=%d cutoffs=%d", difficulty, best, s.stats.Nodes, s.stats.Cutoffs)
	return best, true
}

// bestRootMove scores each root move to depth plies and keeps the first
// move with the best score for the side to move.
func (s *Searcher) bestRootMove(ctx context.Context, board *chess.Board, moves []chess.Move, depth int) chess.Move {
	maximizing := board.ToMove == chess.White
	alpha, beta := -infinity, infinity

	best := moves[0]
	bestScore := beta
	if maximizing {
		bestScore = alpha
	}

	for i, m := range moves {
		if i > 0 && ctx.Err() != nil {
			break
		}
		engine.Apply(board, m)
		score := s.minimax(ctx, board, depth-1, alpha, beta, 1)
		engine.Undo(board)
		if i > 0 && ctx.Err() != nil {
			// m's subtree was cut short; its score is not comparable.
			break
		}

		if maximizing {
			if score > bestScore {
				best, bestScore = m, score
			}
			alpha = max(alpha, bestScore)
		} else {
			if score < bestScore {
				best, bestScore = m, score
			}
			beta = min(beta, bestScore)
		}
	}
	return best
}

// minimax scores board from White's point of view.
func (s *Searcher) minimax(ctx context.Context, board *chess.Board, depth, alpha, beta, ply int) int {
	s.stats.Nodes++
	if depth <= 0 || ctx.Err() != nil {
		return s.leaf(board, ply)
	}

	moves := engine.AppendLegalMoves(s.buffer(ply), board)
	s.buffers[ply] = moves
	if len(moves) == 0 {
		return s.leaf(board, ply)
	}

	if board.ToMove == chess.White {
		value := -infinity
		for _, m := range moves {
			engine.Apply(board, m)
			value = max(value, s.minimax(ctx, board, depth-1, alpha, beta, ply+1))
			engine.Undo(board)
			alpha = max(alpha, value)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return value
	}

	value := infinity
	for _, m := range moves {
		engine.Apply(board, m)
		value = min(value, s.minimax(ctx, board, depth-1, alpha, beta, ply+1))
		engine.Undo(board)
		beta = min(beta, value)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return value
}

// leaf scores a node that is not expanded. With mate scoring on, a side
// with no legal move is scored as mated or stalemated; otherwise every leaf
// is scored by material alone.
func (s *Searcher) leaf(board *chess.Board, ply int) int {
	if s.cfg.ScoreMates && !engine.HasLegalMoves(board, board.ToMove) {
		if !engine.IsInCheck(board, board.ToMove) {
			return 0
		}
		if board.ToMove == chess.White {
			return -(MateScore - ply)
		}
		return MateScore - ply
	}
	return Evaluate(board)
}

// buffer returns the empty move buffer for a ply.
func (s *Searcher) buffer(ply int) []chess.Move {
	for len(s.buffers) <= ply {
		s.buffers = append(s.buffers, make([]chess.Move, 0, 64))
	}
	return s.buffers[ply][:0]
}
