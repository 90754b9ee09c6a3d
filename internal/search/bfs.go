package search

import (
	"context"
	"time"

	"clickgrid/internal/board"
)

// BFS explores breadth-first with a bounded FIFO frontier and (hash|depth)
// dedup: the same state may be re-queued at a different depth, since depth
// is part of the visited key rather than the state alone. The first solved
// board popped is optimal for the FIFO ordering and is returned immediately.
func BFS(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	start := time.Now()
	stats := Stats{}
	visited := make(map[uint64]bool)

	frontier := NewBoundedFIFO(opt.MaxQueueSize)
	root := initial.Copy()
	frontier.Push(fifoNode{Board: root, Depth: 0})
	visited[depthKey(root.Hash(), 0)] = true

	for frontier.Len() > 0 {
		if cancelled(ctx) {
			break
		}
		node, ok := frontier.Pop()
		if !ok {
			break
		}
		stats.NodesExplored++

		if node.Board.IsSolved() {
			stats.MaxFrontier = frontier.MaxLen()
			stats.Elapsed = time.Since(start)
			return &Result{Board: node.Board, Stats: stats}, true
		}

		if node.Depth >= opt.MaxSteps {
			continue
		}

		for _, pos := range Enumerate(node.Board) {
			nb, changed := tryMove(node.Board, pos)
			if !changed {
				continue
			}
			key := depthKey(nb.Hash(), node.Depth+1)
			if visited[key] {
				continue
			}
			visited[key] = true
			stats.NodesGenerated++
			frontier.Push(fifoNode{Board: nb, Depth: node.Depth + 1})
		}
	}

	stats.MaxFrontier = frontier.MaxLen()
	stats.Elapsed = time.Since(start)
	return &Result{Stats: stats}, false
}
