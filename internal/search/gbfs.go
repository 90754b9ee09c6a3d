package search

import (
	"context"
	"time"

	"clickgrid/internal/board"
)

// GBFS (Greedy Best-First Search) orders its frontier by heuristic value
// alone, ignoring the cost already paid to reach a state. Dedup and
// eviction follow the same (hash|depth) / worst-priority-eviction policy
// as A*/EA*, but since priority here is h alone, "worst" means furthest
// from the goal by the chosen heuristic.
func GBFS(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	return bestFirst(ctx, initial, opt, func(_ int, h int) int { return h })
}

// bestFirst is the priority-queue-driven expansion loop shared by GBFS and
// A*/Enhanced A*; they differ only in how g and h combine into a priority.
func bestFirst(ctx context.Context, initial *board.Board, opt Options, priority func(g, h int) int) (*Result, bool) {
	start := time.Now()
	stats := Stats{}
	visited := make(map[uint64]bool)

	frontier := NewBoundedPQ(opt.MaxQueueSize)
	root := initial.Copy()
	h0 := heuristicOf(root, opt)
	frontier.Push(&frontierNode{Board: root, Depth: 0, Priority: priority(0, h0)})
	visited[depthKey(root.Hash(), 0)] = true

	for frontier.Len() > 0 {
		if cancelled(ctx) {
			break
		}
		node, ok := frontier.PopMin()
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
			depth := node.Depth + 1
			key := depthKey(nb.Hash(), depth)
			if visited[key] {
				continue
			}
			visited[key] = true
			stats.NodesGenerated++
			frontier.Push(&frontierNode{Board: nb, Depth: depth, Priority: priority(depth, heuristicOf(nb, opt))})
		}
	}

	stats.MaxFrontier = frontier.MaxLen()
	stats.Elapsed = time.Since(start)
	return &Result{Stats: stats}, false
}

// heuristicOf dispatches to HWrong or HEnhanced per the options' chosen
// heuristic kind.
func heuristicOf(b *board.Board, opt Options) int {
	if opt.Heuristic == HeuristicEnhanced && opt.Hints != nil {
		return HEnhanced(b, opt.Hints)
	}
	return HWrong(b)
}
