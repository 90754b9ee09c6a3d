package search

import (
	"context"
	"time"

	"clickgrid/internal/board"
)

// DFS explores depth-first, pruning at depth > MaxSteps, deduplicating on
// the plain state hash (no depth component — unlike BFS/GBFS/A*/EA*, a
// state once visited is never re-entered at any depth). It keeps the best
// (fewest-move) solved board seen across the whole recursion rather than
// stopping at the first one.
func DFS(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	start := time.Now()
	visited := make(map[uint64]bool)
	stats := Stats{}
	var best *board.Board

	var recurse func(b *board.Board, depth int)
	recurse = func(b *board.Board, depth int) {
		if cancelled(ctx) {
			return
		}
		stats.NodesExplored++

		if depth > opt.MaxSteps {
			return
		}
		h := b.Hash()
		if visited[h] {
			return
		}
		visited[h] = true

		if b.IsSolved() {
			if best == nil || b.Moves.Len() < best.Moves.Len() {
				best = b
			}
			return
		}

		for _, pos := range Enumerate(b) {
			nb, changed := tryMove(b, pos)
			if !changed {
				continue
			}
			stats.NodesGenerated++
			recurse(nb, depth+1)
		}
	}

	recurse(initial.Copy(), 0)
	stats.Elapsed = time.Since(start)

	if best == nil {
		return &Result{Stats: stats}, false
	}
	return &Result{Board: best, Stats: stats}, true
}
