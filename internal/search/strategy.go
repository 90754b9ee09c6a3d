package search

import (
	"context"

	"clickgrid/internal/board"
	"clickgrid/internal/rules"
)

// Strategy is the common shape of every search engine: given an initial
// board (owned by the caller; strategies copy before mutating) and a set
// of options, it returns a solved board and stats, or ok=false if none was
// found within budget. Strategies check ctx between expansions so the
// coordinator can cancel a loser after a winner is found; true forceful
// OS-level termination isn't available to a goroutine, so cooperative
// cancellation via context is the idiomatic Go substitute.
type Strategy func(ctx context.Context, initial *board.Board, opt Options) (*Result, bool)

// cancelled is a small helper shared by every strategy's expansion loop.
func cancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// tryMove copies b and applies a click at pos, reporting the resulting
// board and whether anything changed. No-op clicks are always skipped by
// callers per §9: the move counter advances regardless of changed?, and
// would otherwise pollute max_steps accounting.
func tryMove(b *board.Board, pos board.Position) (*board.Board, bool) {
	nb := b.Copy()
	if !rules.ApplyClick(nb, pos.Row, pos.Col) {
		return nil, false
	}
	return nb, true
}
