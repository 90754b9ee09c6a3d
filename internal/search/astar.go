package search

import "context"

import "clickgrid/internal/board"

// AStar orders its frontier by g+h using the "wrong cells" heuristic.
func AStar(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	o := opt
	o.Heuristic = HeuristicWrong
	return bestFirst(ctx, initial, o, func(g, h int) int { return g + h })
}

// EnhancedAStar orders its frontier by g+h using the hint-aware heuristic,
// falling back to HWrong when no hints were supplied.
func EnhancedAStar(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	o := opt
	o.Heuristic = HeuristicEnhanced
	return bestFirst(ctx, initial, o, func(g, h int) int { return g + h })
}
