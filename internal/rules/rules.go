// Package rules implements the deterministic click transition: the sole
// state-mutating function in the whole solver. ApplyClick is pure in the
// sense that its result depends only on (board, r, c); it holds no hidden
// state of its own.
package rules

import "clickgrid/internal/board"

// directions for the four static arrows and their rotating counterparts.
var staticDelta = map[byte][2]int{
	'U': {-1, 0},
	'D': {1, 0},
	'L': {0, -1},
	'R': {0, 1},
}

// rotatingToStatic maps a rotating arrow's modifier to the direction it
// currently fires in.
var rotatingToStatic = map[byte]byte{
	'w': 'U',
	's': 'D',
	'a': 'L',
	'x': 'R',
}

// rotatingNext is the w -> x -> s -> a -> w cycle.
var rotatingNext = map[byte]byte{
	'w': 'x',
	'x': 's',
	's': 'a',
	'a': 'w',
}

// ApplyClick mutates b in place per the clicked cell's modifier and
// reports whether anything changed. The click is always recorded in
// b.Moves, even when changed is false.
func ApplyClick(b *board.Board, r, c int) (changed bool) {
	b.Moves.Append(board.Position{Row: r, Col: c})

	if !b.InBounds(r, c) {
		return false
	}

	color := b.Color(r, c)
	modifier := b.Modifier(r, c)

	switch {
	case modifier == 'U' || modifier == 'D' || modifier == 'L' || modifier == 'R':
		d := staticDelta[modifier]
		return fireRay(b, r, c, d[0], d[1], color)
	case modifier == 'F':
		return applyFlood(b, r, c, color)
	case modifier == 'B':
		return applyBomb(b, r, c, color)
	case modifier == 'w' || modifier == 's' || modifier == 'a' || modifier == 'x':
		return applyRotating(b, r, c, modifier, color)
	default:
		return false
	}
}

// fireRay implements the directional arrow transition shared by the four
// static arrows and the rotating arrows' fire step.
func fireRay(b *board.Board, r, c, dr, dc int, color byte) bool {
	tr, tc := r+dr, c+dc
	if !b.InBounds(tr, tc) {
		return false
	}

	var fromColor, toColor byte
	switch target := b.Modifier(tr, tc); {
	case target == color:
		fromColor, toColor = color, '0'
	case target == '0':
		fromColor, toColor = '0', color
	default:
		return false
	}

	changed := false
	for rr, cc := tr, tc; b.InBounds(rr, cc) && b.Modifier(rr, cc) == fromColor; rr, cc = rr+dr, cc+dc {
		b.SetModifier(rr, cc, toColor)
		changed = true
	}
	return changed
}

// applyBomb paints the 3x3 neighborhood centered at (r,c), skipping walls.
// Always reports a change, per §4.1.
func applyBomb(b *board.Board, r, c int, color byte) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			rr, cc := r+dr, c+dc
			if !b.InBounds(rr, cc) || b.IsWall(rr, cc) {
				continue
			}
			b.SetModifier(rr, cc, color)
		}
	}
	return true
}

// applyRotating fires a directional ray using the mapped static direction,
// then advances the clicked cell's modifier in the rotation cycle. Always
// reports a change, per §4.1, regardless of whether the ray itself moved
// anything.
func applyRotating(b *board.Board, r, c int, modifier, color byte) bool {
	d := staticDelta[rotatingToStatic[modifier]]
	fireRay(b, r, c, d[0], d[1], color)
	b.SetModifier(r, c, rotatingNext[modifier])
	return true
}

// applyFlood 4-connected-floods from each orthogonal neighbor of (r,c),
// painting '0' cells to color. If no neighbor wrote anything, it retries
// the erase direction (color -> '0'). The clicked cell itself is never
// repainted.
func applyFlood(b *board.Board, r, c int, color byte) bool {
	neighbors := []board.Position{
		{Row: r - 1, Col: c},
		{Row: r + 1, Col: c},
		{Row: r, Col: c - 1},
		{Row: r, Col: c + 1},
	}

	wrote := false
	for _, n := range neighbors {
		if floodFrom(b, n.Row, n.Col, '0', color) {
			wrote = true
		}
	}
	if wrote {
		return true
	}

	for _, n := range neighbors {
		if floodFrom(b, n.Row, n.Col, color, '0') {
			wrote = true
		}
	}
	return wrote
}

// floodFrom repaints the 4-connected region of cells whose modifier equals
// from, setting each to to. Walls and any non-matching modifier block the
// flood. Uses an explicit stack rather than recursion, per §9's guidance
// for recursion-heavy rules on boards up to 15x15.
func floodFrom(b *board.Board, startR, startC int, from, to byte) bool {
	if !b.InBounds(startR, startC) || b.Modifier(startR, startC) != from {
		return false
	}

	wrote := false
	visited := make(map[board.Position]bool)
	stack := []board.Position{{Row: startR, Col: startC}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[p] {
			continue
		}
		visited[p] = true

		if !b.InBounds(p.Row, p.Col) || b.Modifier(p.Row, p.Col) != from {
			continue
		}

		b.SetModifier(p.Row, p.Col, to)
		wrote = true

		stack = append(stack,
			board.Position{Row: p.Row - 1, Col: p.Col},
			board.Position{Row: p.Row + 1, Col: p.Col},
			board.Position{Row: p.Row, Col: p.Col - 1},
			board.Position{Row: p.Row, Col: p.Col + 1},
		)
	}

	return wrote
}
