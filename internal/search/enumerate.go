package search

import "clickgrid/internal/board"

// Enumerate lists every legal click position in row-major order: a cell is
// clickable iff its modifier is in {L,R,U,D,w,s,a,x,F,B} and its
// reachability constraint, if any, is satisfied. Iteration order is the
// deterministic tie-break strategies rely on.
func Enumerate(b *board.Board) []board.Position {
	var out []board.Position
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if !board.IsClickable(b.Modifier(r, c)) {
				continue
			}
			only := b.OnlyReachableFrom(r, c)
			if only != board.NonePos && only != (board.Position{Row: r, Col: c}) {
				continue
			}
			out = append(out, board.Position{Row: r, Col: c})
		}
	}
	return out
}
