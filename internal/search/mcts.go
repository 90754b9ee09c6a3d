package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"clickgrid/internal/board"
)

// mctsNode is one node of the UCB1 search tree: a board state reached by a
// sequence of moves, its children (one per expanded move that changed the
// board), its untried moves, and the visit/value statistics UCB1 selection
// needs.
type mctsNode struct {
	board    *board.Board
	parent   *mctsNode
	children []*mctsNode
	untried  []board.Position
	visits   int
	value    float64
}

const mctsExploration = math.Sqrt2
const mctsEpsilon = 1e-9

// MCTS runs Monte Carlo Tree Search: selection via UCB1 down to a leaf,
// expansion of one untried move, a random playout, and backpropagation of
// the playout's reward. It loops until ctx is cancelled or opt.Timeout
// elapses. If a rollout ever solves the board, that board is returned
// immediately; otherwise, once the loop ends, the most-visited root child
// is returned as the best guess, or none if the root was never expanded.
// The PRNG is seeded from opt.Seed so a run is reproducible for a fixed
// seed.
func MCTS(ctx context.Context, initial *board.Board, opt Options) (*Result, bool) {
	start := time.Now()
	stats := Stats{}
	rng := rand.New(rand.NewSource(opt.Seed))

	root := &mctsNode{board: initial.Copy(), untried: Enumerate(initial)}
	if root.board.IsSolved() {
		stats.Elapsed = time.Since(start)
		return &Result{Board: root.board, Stats: stats}, true
	}

	var solved *board.Board

	for {
		if cancelled(ctx) {
			break
		}
		if opt.Timeout > 0 && time.Since(start) > opt.Timeout {
			break
		}

		// Selection: descend while the node has no untried moves and has
		// children to pick among.
		node := root
		for len(node.untried) == 0 && len(node.children) > 0 {
			node = selectUCB(node)
		}

		// Expansion: pop one untried move. A no-op click creates no child;
		// the node stands as its own simulation start per §4.4.
		if len(node.untried) > 0 && node.board.Moves.Len() < opt.MaxSteps {
			i := rng.Intn(len(node.untried))
			pos := node.untried[i]
			node.untried = append(node.untried[:i], node.untried[i+1:]...)

			nb, changed := tryMove(node.board, pos)
			if changed {
				stats.NodesGenerated++
				child := &mctsNode{board: nb, parent: node, untried: Enumerate(nb)}
				node.children = append(node.children, child)
				node = child
			}
		}
		stats.NodesExplored++

		// Simulation.
		rollout, reward := playout(node.board, opt, rng, &stats)

		// Termination check: a solved rollout is recorded and ends the search.
		if rollout.IsSolved() {
			solved = rollout
		}

		// Backpropagation.
		for n := node; n != nil; n = n.parent {
			n.visits++
			n.value += reward
		}

		if solved != nil {
			break
		}
	}

	stats.Elapsed = time.Since(start)
	if solved != nil {
		return &Result{Board: solved, Stats: stats}, true
	}

	if best := mostVisitedChild(root); best != nil {
		return &Result{Board: best.board, Stats: stats}, false
	}
	return &Result{Stats: stats}, false
}

// selectUCB picks the child maximizing UCB1 = reward/visits +
// sqrt(2)*sqrt(log(parent_visits+1)/visits), with a small epsilon guarding
// the denominator for an as-yet-unvisited child.
func selectUCB(n *mctsNode) *mctsNode {
	bestChild := n.children[0]
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		visits := float64(c.visits) + mctsEpsilon
		exploit := c.value / visits
		explore := mctsExploration * math.Sqrt(math.Log(float64(n.visits+1))/visits)
		score := exploit + explore
		if score > bestScore {
			bestScore = score
			bestChild = c
		}
	}
	return bestChild
}

// mostVisitedChild returns root's child with the highest visit count, or
// nil if root was never expanded.
func mostVisitedChild(root *mctsNode) *mctsNode {
	var best *mctsNode
	for _, c := range root.children {
		if best == nil || c.visits > best.visits {
			best = c
		}
	}
	return best
}

// playout performs a random rollout from b until solved, a move cap is hit,
// or no legal moves remain. It returns the final board reached and its
// reward: 1 if solved, else 1/(1+incorrect_cells).
func playout(b *board.Board, opt Options, rng *rand.Rand, stats *Stats) (*board.Board, float64) {
	cur := b
	for cur.Moves.Len() < opt.MaxSteps && !cur.IsSolved() {
		moves := Enumerate(cur)
		if len(moves) == 0 {
			break
		}
		stuck := true
		for attempt := 0; attempt < len(moves); attempt++ {
			pos := moves[rng.Intn(len(moves))]
			nb, changed := tryMove(cur, pos)
			if changed {
				stats.NodesGenerated++
				cur = nb
				stuck = false
				break
			}
		}
		if stuck {
			break
		}
	}
	if cur.IsSolved() {
		return cur, 1.0
	}
	return cur, 1.0 / (1.0 + float64(cur.CountIncorrect()))
}
