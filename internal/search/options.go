package search

import (
	"time"

	"clickgrid/internal/board"
)

// HeuristicKind selects which scalar estimate an informed strategy uses.
type HeuristicKind int

const (
	HeuristicWrong HeuristicKind = iota
	HeuristicEnhanced
)

// Options bounds and tunes a single strategy run. Not every field applies
// to every strategy; see each strategy's doc comment.
type Options struct {
	MaxSteps     int           // depth / bound cutoff
	MaxQueueSize int           // frontier cap for BFS/GBFS/A*/EA*; 0 = unbounded
	Timeout      time.Duration // wall-clock budget for IDA*/MCTS; 0 = no timeout
	Heuristic    HeuristicKind
	Hints        *Hints
	Seed         int64 // MCTS PRNG seed, for reproducible tests
}

// Stats reports the bookkeeping a strategy accumulated during a run.
type Stats struct {
	NodesExplored  int
	NodesGenerated int
	MaxFrontier    int
	Elapsed        time.Duration
}

// Result is what a strategy returns on success: the solved board and the
// stats gathered while finding it.
type Result struct {
	Board *board.Board
	Stats Stats
}
