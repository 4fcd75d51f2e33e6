package game

import "github.com/lgbarn/chess-engine-go/internal/chess"

// StatusText describes the game state for display: "White's turn",
// "Black's turn (Check)", "Checkmate! White wins!" or "Stalemate!".
func (g *Game) StatusText() string {
	switch g.status {
	case chess.Checkmate:
		return "Checkmate! " + g.board.ToMove.Opposite().String() + " wins!"
	case chess.Stalemate:
		return "Stalemate!"
	case chess.Check:
		return g.board.ToMove.String() + "'s turn (Check)"
	default:
		return g.board.ToMove.String() + "'s turn"
	}
}

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2" or
// "*" while the game is in progress.
func (g *Game) Result() string {
	switch g.status {
	case chess.Checkmate:
		if g.board.ToMove == chess.Black {
			return "1-0"
		}
		return "0-1"
	case chess.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}
