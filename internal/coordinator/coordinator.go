// Package coordinator races every enabled search strategy against the same
// board concurrently and collects the shortest validated solution, modeled
// on the teacher's worker-fan-in-via-channerics.Merge pattern for episode
// collection.
package coordinator

import (
	"context"
	"fmt"
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"clickgrid/internal/board"
	"clickgrid/internal/rules"
	"clickgrid/internal/search"
)

// Registry maps a strategy's name to its implementation, so config and the
// CLI can select strategies by string rather than importing search.Strategy
// values directly.
var Registry = map[string]search.Strategy{
	"dfs":            search.DFS,
	"bfs":            search.BFS,
	"gbfs":           search.GBFS,
	"astar":          search.AStar,
	"enhanced_astar": search.EnhancedAStar,
	"idastar":        search.IDAStar,
	"mcts":           search.MCTS,
}

// ProgressEvent reports one strategy's outcome as it finishes, for an
// optional live-progress consumer (e.g. internal/progressserver).
type ProgressEvent struct {
	Strategy string
	Solved   bool
	Stats    search.Stats
}

// finding is what a single racing worker sends on the fan-in channel.
type finding struct {
	strategy string
	result   *search.Result
	solved   bool
}

// Config tunes a coordinated run.
type Config struct {
	Strategies []string // names into Registry; empty means "all"
	K          int      // stop after this many solved results; 0 means "wait for all"
	Options    search.Options
	Progress   chan<- ProgressEvent // optional; never blocked on if the receiver is slow to drain a buffered chan
}

// Outcome is the coordinator's verdict: the best (shortest, replay-validated)
// solution found, and which strategy produced it.
type Outcome struct {
	Board    *board.Board
	Strategy string
	Stats    search.Stats
}

// Run launches one goroutine per configured strategy, cancels the rest once
// K solutions have been collected (or all workers finish), and returns the
// shortest solution that passes replay validation. It returns ok=false if no
// strategy solved the board.
func Run(ctx context.Context, initial *board.Board, cfg Config) (Outcome, bool) {
	names := cfg.Strategies
	if len(names) == 0 {
		for name := range Registry {
			names = append(names, name)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := make([]<-chan finding, 0, len(names))
	for _, name := range names {
		strat, ok := Registry[name]
		if !ok {
			continue
		}
		workers = append(workers, launch(runCtx, name, strat, initial, cfg.Options))
	}

	k := cfg.K
	if k <= 0 {
		k = len(workers)
	}

	var collected []finding
	for f := range channerics.Merge(runCtx.Done(), workers...) {
		if cfg.Progress != nil {
			stats := search.Stats{}
			if f.result != nil {
				stats = f.result.Stats
			}
			select {
			case cfg.Progress <- ProgressEvent{Strategy: f.strategy, Solved: f.solved, Stats: stats}:
			default:
			}
		}
		if f.solved {
			collected = append(collected, f)
			if len(collected) >= k {
				cancel()
			}
		}
	}

	return pickBest(initial, collected)
}

// launch runs strategy in its own goroutine, recovering a panic as "no
// solution from that strategy" per the worker-isolation requirement, and
// reports its single finding on a unit-buffered channel so the sender never
// blocks past merge if the fan-in was already cancelled.
func launch(ctx context.Context, name string, strat search.Strategy, initial *board.Board, opt search.Options) <-chan finding {
	out := make(chan finding, 1)
	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				out <- finding{strategy: name, solved: false}
			}
		}()
		res, ok := strat(ctx, initial, opt)
		out <- finding{strategy: name, result: res, solved: ok}
	}()
	return out
}

// pickBest selects the shortest replay-validated solution among collected
// findings, breaking ties by strategy name for determinism.
func pickBest(initial *board.Board, collected []finding) (Outcome, bool) {
	var best *finding
	for i := range collected {
		f := &collected[i]
		if f.result == nil || f.result.Board == nil {
			continue
		}
		if !Validate(initial, f.result.Board) {
			continue
		}
		if best == nil ||
			f.result.Board.Moves.Len() < best.result.Board.Moves.Len() ||
			(f.result.Board.Moves.Len() == best.result.Board.Moves.Len() && f.strategy < best.strategy) {
			best = f
		}
	}
	if best == nil {
		return Outcome{}, false
	}
	return Outcome{Board: best.result.Board, Strategy: best.strategy, Stats: best.result.Stats}, true
}

// Validate replays a solved board's move sequence from initial and confirms
// it reaches an identical, solved grid — a defense against a strategy bug
// that reports success on a board it never actually reached by valid clicks.
func Validate(initial *board.Board, solved *board.Board) bool {
	replay := initial.Copy()
	for _, pos := range solved.Moves.Positions {
		rules.ApplyClick(replay, pos.Row, pos.Col)
	}
	return replay.IsSolved() && replay.Equal(solved)
}

// String renders the event as a one-line summary, with the elapsed time
// rounded to the millisecond.
func (e ProgressEvent) String() string {
	return fmt.Sprintf("%s: solved=%v nodes=%d elapsed=%s", e.Strategy, e.Solved, e.Stats.NodesExplored, e.Stats.Elapsed.Round(time.Millisecond))
}
