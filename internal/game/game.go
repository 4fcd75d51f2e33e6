// Package game is the facade a presentation layer drives: it owns one board,
// validates move requests, runs the two-phase promotion protocol, keeps the
// status current and makes checkmate and stalemate absorbing.
package game

import (
	"context"
	goerrors "errors"
	"slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// MoveResult is the outcome of a move request.
type MoveResult int

const (
	// Rejected means the board is unchanged and the error says why.
	Rejected MoveResult = iota
	// Applied means the move was played.
	Applied
	// NeedsPromotionChoice means the move promotes and no piece kind was
	// given. The board is unchanged; repeat the request with a kind.
	NeedsPromotionChoice
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case Applied:
		return "applied"
	case NeedsPromotionChoice:
		return "needs promotion choice"
	default:
		return "rejected"
	}
}

// Game is a single game in progress. It is not safe for concurrent use.
type Game struct {
	cfg      *config.Config
	board    *chess.Board
	status   chess.GameStatus
	sans     []string
	searcher *search.Searcher
}

// New starts a game from the standard initial position. A nil cfg uses the
// defaults.
func New(cfg *config.Config) *Game {
	return newGame(engine.NewInitialBoard(), cfg)
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string, cfg *config.Config) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board, cfg), nil
}

func newGame(board *chess.Board, cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		cfg:      cfg,
		board:    board,
		status:   engine.Status(board),
		searcher: search.NewSearcher(cfg),
	}
}

// LegalMoves returns the legal moves of the piece on cell. It returns nil
// for an empty cell or a piece of the side not on move.
func (g *Game) LegalMoves(cell chess.Cell) []chess.Move {
	piece := g.board.Get(cell)
	if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != g.board.ToMove {
		return nil
	}
	return engine.LegalMoves(g.board, cell)
}

// ApplyMove plays the move from one cell to another. promotion is the piece
// kind for a promoting pawn and must be chess.Empty otherwise. A rejection
// returns a *errors.MoveError.
func (g *Game) ApplyMove(from, to chess.Cell, promotion chess.Piece) (MoveResult, error) {
	reject := func(err error) (MoveResult, error) {
		return Rejected, &errors.MoveError{
			Err:  err,
			Ply:  g.board.Ply() + 1,
			From: from.String(),
			To:   to.String(),
		}
	}

	if g.status.IsTerminal() {
		return reject(errors.ErrGameOver)
	}
	piece := g.board.Get(from)
	if !chess.IsOccupied(piece) {
		return reject(errors.ErrEmptySquare)
	}
	if chess.ExtractColour(piece) != g.board.ToMove {
		return reject(errors.ErrWrongSide)
	}

	var candidates []chess.Move
	for _, m := range engine.LegalMoves(g.board, from) {
		if m.To == to {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return reject(errors.ErrIllegalMove)
	}

	if !candidates[0].IsPromotion() {
		if promotion != chess.Empty {
			return reject(errors.ErrInvalidPromotion)
		}
		g.play(candidates[0])
		return Applied, nil
	}

	if promotion == chess.Empty {
		return NeedsPromotionChoice, nil
	}
	for _, m := range candidates {
		if m.Promotion == promotion {
			g.play(m)
			return Applied, nil
		}
	}
	return reject(errors.ErrInvalidPromotion)
}

// ApplyText plays a move given in coordinate notation ("e2e4", "e7e8q") or
// SAN ("Nf3", "O-O"). A promotion without a piece letter returns
// NeedsPromotionChoice.
func (g *Game) ApplyText(text string) (MoveResult, error) {
	reject := func(err error) (MoveResult, error) {
		return Rejected, &errors.MoveError{Err: err, Ply: g.board.Ply() + 1, MoveText: text}
	}

	if g.status.IsTerminal() {
		return reject(errors.ErrGameOver)
	}
	m, err := engine.ParseMove(g.board, text)
	if goerrors.Is(err, errors.ErrInvalidPromotion) {
		return NeedsPromotionChoice, nil
	}
	if err != nil {
		return reject(err)
	}
	g.play(m)
	return Applied, nil
}

// play applies a legal move and refreshes the derived state.
func (g *Game) play(m chess.Move) {
	san := engine.MoveToSAN(g.board, m)
	engine.Apply(g.board, m)
	g.sans = append(g.sans, san)
	g.status = engine.Status(g.board)
	g.cfg.Logf(2, "%d. %s (%s)", len(g.sans), san, g.status)
}

// Undo takes back the last move. It returns false if there is none.
// Undoing out of checkmate or stalemate resumes the game.
func (g *Game) Undo() bool {
	if !engine.Undo(g.board) {
		return false
	}
	g.sans = g.sans[:len(g.sans)-1]
	g.status = engine.Status(g.board)
	return true
}

// Status returns the status of the side to move.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// IsOver reports whether the game ended in checkmate or stalemate.
func (g *Game) IsOver() bool {
	return g.status.IsTerminal()
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return g.board.Ply()
}

// History returns the moves played, in SAN.
func (g *Game) History() []string {
	return slices.Clone(g.sans)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// DrawRules reports which draw rules the game so far satisfies. They are
// informational; Status does not end the game on them.
func (g *Game) DrawRules() engine.DrawRuleResult {
	return engine.AnalyzeDrawRules(g.board)
}

// SelectAIMove asks the searcher for a move for the side to move without
// playing it. It returns false once the game is over.
func (g *Game) SelectAIMove(ctx context.Context, difficulty search.Difficulty) (chess.Move, bool) {
	if g.status.IsTerminal() {
		return chess.Move{}, false
	}
	return g.searcher.SelectMove(ctx, g.board, difficulty)
}

// PlayAIMove selects and plays a move for the side to move. If ctx is
// cancelled during the search nothing is played and the context's error is
// returned inside a MoveError.
func (g *Game) PlayAIMove(ctx context.Context, difficulty search.Difficulty) (chess.Move, error) {
	m, ok := g.SelectAIMove(ctx, difficulty)
	if !ok {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrGameOver, Ply: g.board.Ply() + 1}
	}
	if err := ctx.Err(); err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: g.board.Ply() + 1}
	}
	g.play(m)
	return m, nil
}

// SearchStats returns the counters of the last AI search.
func (g *Game) SearchStats() search.Stats {
	return g.searcher.Stats()
}
