package search

import (
	"context"
	"time"

	"clickgrid/internal/board"
)

// IDAStar runs iterative-deepening A*: each iteration performs a depth-first
// search bounded by an f = g+h cutoff, raising the cutoff to the minimum
// f-value that exceeded it on the previous iteration. Dedup is path-only
// (a state already on the current DFS path is skipped, per §4.4), not a
// persistent visited set, since the same state may legitimately recur
// across iterations or off-path. A wall-clock Timeout is the sentinel that
// stops an otherwise unbounded search on an unsolvable board.
func IDAStar(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	start := time.Now()
	stats := Stats{}
	deadline := opt.Timeout
	root := initial.Copy()

	bound := heuristicOf(root, opt)
	path := map[uint64]bool{root.Hash(): true}

	var search func(b *board.Board, g, bound int) (*board.Board, int, bool)
	search = func(b *board.Board, g, bound int) (*board.Board, int, bool) {
		if deadline > 0 && time.Since(start) > deadline {
			return nil, -1, false
		}
		if cancelled(ctx) {
			return nil, -1, false
		}
		stats.NodesExplored++

		h := heuristicOf(b, opt)
		f := g + h
		if f > bound {
			return nil, f, false
		}
		if b.IsSolved() {
			return b, f, true
		}
		if g >= opt.MaxSteps {
			return nil, -1, false
		}

		minOverflow := -1
		for _, pos := range Enumerate(b) {
			nb, changed := tryMove(b, pos)
			if !changed {
				continue
			}
			nh := nb.Hash()
			if path[nh] {
				continue
			}
			stats.NodesGenerated++
			path[nh] = true
			found, next, ok := search(nb, g+1, bound)
			delete(path, nh)
			if ok {
				return found, next, true
			}
			if next >= 0 && (minOverflow < 0 || next < minOverflow) {
				minOverflow = next
			}
		}
		return nil, minOverflow, false
	}

	for {
		if deadline > 0 && time.Since(start) > deadline {
			break
		}
		found, next, ok := search(root, 0, bound)
		if ok {
			stats.Elapsed = time.Since(start)
			return &Result{Board: found, Stats: stats}, true
		}
		if next < 0 {
			break
		}
		bound = next
	}

	stats.Elapsed = time.Since(start)
	return &Result{Stats: stats}, false
}
